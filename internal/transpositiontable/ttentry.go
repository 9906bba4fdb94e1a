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

package transpositiontable

import "github.com/frankkopp/xiangqi-go/internal/xq"

// Flag classifies how Value relates to the alpha/beta window that was open
// when an entry was stored.
type Flag int8

// Flag values. FlagNone marks an empty slot.
const (
	FlagNone Flag = iota
	FlagAlpha
	FlagBeta
	FlagPV
)

// Entry is one direct-mapped transposition table slot. Unlike the
// teacher's 64-bit single-key design, collisions here are resolved by
// comparing the full 32-bit lock kept alongside the (possibly colliding)
// index derived from the key - see Table.index.
type Entry struct {
	Lock  xq.Lock
	Move  xq.Move
	Value xq.Value
	Depth int8
	Flag  Flag
}

// empty reports whether this slot has never been written (zero lock and
// zero depth, matching an empty Entry's zero value).
func (e *Entry) empty() bool {
	return e.Lock == 0 && e.Depth == 0
}
