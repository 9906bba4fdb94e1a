//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history provides the history-heuristic table and per-ply killer
// slots used during search to order quiet moves. The table is kept flat
// and indexed by Board.HistoryIndex rather than the teacher's
// [color][from][to] cube, because the core is specified on a single
// (piece, destination) index derived straight from the mover's piece code.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi-go/internal/xq"
)

var out = message.NewPrinter(language.German)

// Table holds the flat history-heuristic counters and the two killer-move
// slots for every ply up to xq.LimitDepth.
type Table struct {
	History [xq.LimitHistory]int64
	Killers [xq.LimitDepth][2]xq.Move
}

// NewTable creates an empty history/killer table, allocated afresh for
// every search_main invocation per SPEC_FULL.md section 6.
func NewTable() *Table {
	return &Table{}
}

// Bump rewards mv at depth by depth^2, following set_best_move in
// SPEC_FULL.md section 7.5.
func (t *Table) Bump(index int, depth int) {
	t.History[index] += int64(depth) * int64(depth)
}

// ScoreOf returns the current history count for a move's table index.
func (t *Table) ScoreOf(index int) int {
	return int(t.History[index])
}

// StoreKiller shifts a new killer into ply's slot 1, demoting the previous
// slot-1 killer to slot 2, unless mv is already the slot-1 killer.
func (t *Table) StoreKiller(ply int, mv xq.Move) {
	if ply < 0 || ply >= xq.LimitDepth {
		return
	}
	if t.Killers[ply][0] == mv {
		return
	}
	t.Killers[ply][1] = t.Killers[ply][0]
	t.Killers[ply][0] = mv
}

// Killer1 and Killer2 return the two killer moves recorded for ply.
func (t *Table) Killer1(ply int) xq.Move { return t.Killers[ply][0] }
func (t *Table) Killer2(ply int) xq.Move { return t.Killers[ply][1] }

func (t *Table) String() string {
	sb := strings.Builder{}
	for i, v := range t.History {
		if v == 0 {
			continue
		}
		sb.WriteString(out.Sprintf("index=%-5d count=%-9d\n", i, v))
	}
	return sb.String()
}
