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

// Package transpositiontable implements the direct-mapped transposition
// table: the low bits of the 32-bit Zobrist key select a slot, and the
// independent 32-bit lock - not the key itself - verifies the slot
// actually belongs to the probed position. This replaces the teacher's
// single 64-bit-key design (see internal/transpositiontable in the
// teacher tree), which has no separate verification value to mirror
// because its key already carries enough entropy on its own.
package transpositiontable

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi-go/internal/logging"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the largest table size Resize will honor.
const MaxSizeInMB = 4_096

// Table is the direct-mapped transposition table. It is not safe for
// concurrent use; each Engine owns one and clears it at the start of every
// SearchMain (see the engine concurrency guard).
type Table struct {
	log      *logging.Logger
	data     []Entry
	mask     uint32
	maxEntries uint32
	entries  uint32
	Stats    Stats
}

// Stats tracks cache effectiveness for logging/diagnostics.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

const entrySize = 16 // bytes per slot assumed when converting megabytes to a slot count; an Entry itself occupies 24 bytes on 64-bit platforms

// New creates a table sized to hold roughly sizeInMByte megabytes' worth
// of entries, rounded down to a power of two for mask-based indexing.
func New(sizeInMByte int) *Table {
	t := &Table{log: logging.Get("tt")}
	t.Resize(sizeInMByte)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	if sizeInByte == 0 {
		t.maxEntries = 0
		t.mask = 0
		t.data = nil
		return
	}
	t.maxEntries = uint32(1) << uint32(math.Floor(math.Log2(float64(sizeInByte/entrySize))))
	t.mask = t.maxEntries - 1
	t.data = make([]Entry, t.maxEntries)
	t.entries = 0
	t.log.Info(out.Sprintf("TT resized to %d entries (%d MB requested)", t.maxEntries, sizeInMByte))
}

func (t *Table) index(key xq.Key) uint32 {
	return uint32(key) & t.mask
}

// Probe looks up zobristKey/zobristLock and, on a verified hit, returns
// the stored entry with Value corrected for the current ply via
// valueFromTT (see Design Notes on the mate-distance convention).
func (t *Table) Probe(key xq.Key, lock xq.Lock, ply int) (Entry, bool) {
	t.Stats.Probes++
	if t.maxEntries == 0 {
		t.Stats.Misses++
		return Entry{}, false
	}
	e := &t.data[t.index(key)]
	if e.empty() || e.Lock != lock {
		t.Stats.Misses++
		return Entry{}, false
	}
	t.Stats.Hits++
	out := *e
	out.Value = valueFromTT(out.Value, ply)
	return out, true
}

// Put stores a search result, converting value to the absolute (root
// relative) scale with valueToTT before writing. Replacement favors
// deeper searches; same-depth entries are overwritten on a verified
// collision only when the new entry is at least as deep.
func (t *Table) Put(key xq.Key, lock xq.Lock, move xq.Move, depth int8, value xq.Value, flag Flag, ply int) {
	if t.maxEntries == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.index(key)]
	absValue := valueToTT(value, ply)

	if e.empty() {
		t.entries++
		*e = Entry{Lock: lock, Move: move, Value: absValue, Depth: depth, Flag: flag}
		return
	}
	if e.Lock != lock {
		t.Stats.Collisions++
		if depth >= e.Depth {
			t.Stats.Overwrites++
			*e = Entry{Lock: lock, Move: move, Value: absValue, Depth: depth, Flag: flag}
		}
		return
	}
	// same position: keep the more informative entry
	if depth >= e.Depth {
		e.Move = move
		e.Value = absValue
		e.Depth = depth
		e.Flag = flag
	}
}

// Clear empties every slot without reallocating.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.entries = 0
	t.Stats = Stats{}
}

// Len reports the number of occupied slots.
func (t *Table) Len() uint32 { return t.entries }

// Hashfull reports table occupancy in permill, as conventionally reported
// by UCI-style engines.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int((1000 * uint64(t.entries)) / uint64(t.maxEntries))
}

func (t *Table) String() string {
	return out.Sprintf("TT entries=%d/%d (%d%%) puts=%d collisions=%d overwrites=%d probes=%d hits=%d misses=%d",
		t.entries, t.maxEntries, t.Hashfull()/10, t.Stats.Puts, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}

// valueToTT converts a search value relative to the current search
// distance into an absolute mate distance before storing it, and
// valueFromTT reverses that on read. This is the standard convention -
// subtract distance from above-WIN scores, add distance to below
// -WIN scores - corrected from the inverted one the reference engine
// and the teacher's own valueToTT/valueFromTT apply (see DESIGN.md).
func valueToTT(value xq.Value, ply int) xq.Value {
	switch {
	case value > xq.WinValue:
		return value - xq.Value(ply)
	case value < -xq.WinValue:
		return value + xq.Value(ply)
	default:
		return value
	}
}

func valueFromTT(value xq.Value, ply int) xq.Value {
	switch {
	case value > xq.WinValue:
		return value + xq.Value(ply)
	case value < -xq.WinValue:
		return value - xq.Value(ply)
	default:
		return value
	}
}
