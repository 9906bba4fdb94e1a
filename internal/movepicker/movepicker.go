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

// Package movepicker yields one move per Next call by walking an explicit
// phase state machine (HASH, KILLER_1, KILLER_2, GEN, REST) instead of
// generating and sorting the whole move list up front. This mirrors the
// teacher's movegen package's pv/killer boosting idea, but models the
// staged lookup as a state machine rather than a single sort pass, and
// adds the in-check pre-population branch the core requires.
package movepicker

import (
	"math"

	"github.com/frankkopp/xiangqi-go/internal/history"
	"github.com/frankkopp/xiangqi-go/internal/moveorder"
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

// Phase identifies where in the staged walk the picker currently is.
type Phase int

// Phase values, in the order Next walks them.
const (
	PhaseHash Phase = iota
	PhaseKiller1
	PhaseKiller2
	PhaseGen
	PhaseRest
	PhaseDone
)

const maxScore = math.MaxInt32

// MovePicker hands out moves for the side to move one at a time, highest
// priority first, without materializing a fully sorted list unless the
// position is in check.
type MovePicker struct {
	board    *position.Board
	hist     *history.Table
	ply      int
	hashMove xq.Move
	killer1  xq.Move
	killer2  xq.Move

	phase Phase

	moves  []xq.Move
	scores []int
	index  int

	// SingleReply is set true when the position is in check and exactly
	// one pseudo-legal move avoids leaving the king in check; search uses
	// this to extend depth without the usual reduction.
	SingleReply bool
}

// New constructs a MovePicker for board's side to move at the given ply,
// preferring hashMove first and then hist's two killer slots for ply. If
// the side to move is in check, the picker is fully pre-populated by
// construction (see populateInCheck); otherwise it walks HASH/KILLER/GEN
// lazily as Next is called.
func New(b *position.Board, hist *history.Table, ply int, hashMove xq.Move) *MovePicker {
	mp := &MovePicker{
		board:    b,
		hist:     hist,
		ply:      ply,
		hashMove: hashMove,
		killer1:  hist.Killer1(ply),
		killer2:  hist.Killer2(ply),
	}
	if b.Checked() {
		mp.populateInCheck()
		return mp
	}
	mp.phase = PhaseHash
	return mp
}

// populateInCheck tries every pseudo-legal move via make/unmake, keeps
// only the ones that do not leave the own king in check, scores each by
// its history count (boosted to maxScore when it equals hashMove or
// either killer), sorts descending and jumps straight to PhaseRest. This
// is the in-check override described in the move-picker design.
func (mp *MovePicker) populateInCheck() {
	candidates, _ := mp.board.GenerateMoves(false)
	moves := make([]xq.Move, 0, len(candidates))
	scores := make([]int, 0, len(candidates))

	for _, mv := range candidates {
		if !mp.board.MakeMove(mv) {
			continue
		}
		mp.board.UndoMove()

		score := mp.hist.ScoreOf(mp.board.HistoryIndex(mv))
		if mv == mp.hashMove || mv == mp.killer1 || mv == mp.killer2 {
			score = maxScore
		}
		moves = append(moves, mv)
		scores = append(scores, score)
	}

	moveorder.Sort(moves, scores)
	mp.moves = moves
	mp.scores = scores
	mp.SingleReply = len(moves) == 1
	mp.phase = PhaseRest
}

// Next returns the next candidate move, or xq.NoMove once every phase is
// exhausted. Moves already handed out in an earlier phase are skipped
// when GEN reaches them.
func (mp *MovePicker) Next() xq.Move {
	for {
		switch mp.phase {
		case PhaseHash:
			mp.phase = PhaseKiller1
			if mp.hashMove != xq.NoMove && mp.board.LegalMove(mp.hashMove) {
				return mp.hashMove
			}
		case PhaseKiller1:
			mp.phase = PhaseKiller2
			if mp.killer1 != xq.NoMove && mp.killer1 != mp.hashMove && mp.board.LegalMove(mp.killer1) {
				return mp.killer1
			}
		case PhaseKiller2:
			mp.phase = PhaseGen
			if mp.killer2 != xq.NoMove && mp.killer2 != mp.hashMove && mp.killer2 != mp.killer1 && mp.board.LegalMove(mp.killer2) {
				return mp.killer2
			}
		case PhaseGen:
			candidates, _ := mp.board.GenerateMoves(false)
			mp.moves = make([]xq.Move, 0, len(candidates))
			mp.scores = make([]int, 0, len(candidates))
			for _, mv := range candidates {
				if mv == mp.hashMove || mv == mp.killer1 || mv == mp.killer2 {
					continue
				}
				mp.moves = append(mp.moves, mv)
				mp.scores = append(mp.scores, mp.hist.ScoreOf(mp.board.HistoryIndex(mv)))
			}
			moveorder.Sort(mp.moves, mp.scores)
			mp.index = 0
			mp.phase = PhaseRest
		case PhaseRest:
			if mp.index >= len(mp.moves) {
				mp.phase = PhaseDone
				return xq.NoMove
			}
			mv := mp.moves[mp.index]
			mp.index++
			return mv
		case PhaseDone:
			return xq.NoMove
		}
	}
}
