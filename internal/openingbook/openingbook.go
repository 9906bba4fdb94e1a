/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package openingbook reads a flat (lock, move, weight) opening book into
// a slice sorted by lock and serves Probe lookups with a binary search,
// trying the position's mirror on a miss. This keeps the teacher's
// openingbook package shape (a Book struct, Initialize, a gob disk
// cache, a logger) but replaces its SAN/PGN game-tree algorithm with the
// sorted-array design of the reference engine's book_move/Book::search.
package openingbook

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi-go/internal/logging"
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

var out = message.NewPrinter(language.German)

// Format identifies the on-disk representation Initialize should expect.
type Format uint8

// Supported book formats.
const (
	// Text is one "lock,move,weight" triple per line, decimal integers.
	Text Format = iota
	// Binary is a gob-encoded []Entry, written by Initialize's own cache
	// and read back on a subsequent run without reparsing the text file.
	Binary
)

// Entry is one book position: lock is the position's zobrist lock shifted
// right by one bit as an unsigned value (matching the reference engine's
// indexing; the shift drops the lowest bit and leaves the sign bit clear),
// move is the recommended reply, and weight is its relative selection
// frequency.
type Entry struct {
	Lock   int32
	Move   xq.Move
	Weight int32
}

// Book is a sorted-by-Lock opening book, queried by Probe.
type Book struct {
	entries     []Entry
	initialized bool
}

// NewBook returns an empty, uninitialized book; call Initialize before
// probing it.
func NewBook() *Book {
	return &Book{}
}

// Initialize loads bookPath in the given format into an entries slice
// sorted ascending by Lock, the layout Probe's binary search requires.
// When format is Text and useCache is true, a ".cache" gob file next to
// bookPath is read instead when present (and recreateCache is false);
// otherwise the text file is parsed and, if useCache, the result is
// written to that cache file for next time - the same cache-file idiom
// as the teacher's own Initialize.
func (b *Book) Initialize(bookPath string, format Format, useCache bool, recreateCache bool) error {
	if b.initialized {
		return nil
	}
	log := logging.GetBookLog()

	if _, err := os.Stat(bookPath); err != nil {
		log.Errorf("opening book file %q does not exist: %v", bookPath, err)
		return err
	}

	if format == Binary {
		entries, err := loadGob(bookPath)
		if err != nil {
			log.Errorf("could not read binary book %q: %v", bookPath, err)
			return err
		}
		b.entries = entries
		b.initialized = true
		log.Info(out.Sprintf("opening book loaded: %d entries", len(b.entries)))
		return nil
	}

	cachePath := bookPath + ".cache"
	if useCache && !recreateCache {
		if entries, err := loadGob(cachePath); err == nil {
			b.entries = entries
			b.initialized = true
			log.Info(out.Sprintf("opening book loaded from cache: %d entries", len(b.entries)))
			return nil
		}
	}

	start := time.Now()
	entries, err := loadText(bookPath)
	if err != nil {
		log.Errorf("could not read opening book %q: %v", bookPath, err)
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Lock < entries[j].Lock })
	b.entries = entries
	b.initialized = true
	log.Info(out.Sprintf("opening book parsed %d entries in %d ms", len(entries), time.Since(start).Milliseconds()))

	if useCache {
		if err := saveGob(cachePath, entries); err != nil {
			log.Errorf("could not write book cache %q: %v", cachePath, err)
		}
	}
	return nil
}

// NumberOfEntries reports how many book positions are loaded.
func (b *Book) NumberOfEntries() int { return len(b.entries) }

// Reset discards all loaded entries so Initialize can be called again.
func (b *Book) Reset() {
	b.entries = nil
	b.initialized = false
}

// Probe returns a book move for board's current position, or xq.NoMove
// if none is recorded (for the position or its mirror) or every
// recorded candidate turns out illegal. Grounded on
// original_source/src/borad.rs's book_move: binary search by lock, a
// retry against the mirrored position on a miss, then a weighted-random
// pick among every legal candidate sharing that lock.
func (b *Book) Probe(board *position.Board) xq.Move {
	if len(b.entries) == 0 {
		return xq.NoMove
	}
	if mv := b.probeAt(board, board.ZobristLock, false); mv != xq.NoMove {
		return mv
	}
	mirrored := board.Mirror()
	return b.probeAt(board, mirrored.ZobristLock, true)
}

func (b *Book) probeAt(board *position.Board, lock xq.Lock, mirror bool) xq.Move {
	key := lockKey(lock)
	idx, found := b.search(key)
	if !found {
		return xq.NoMove
	}

	low := idx
	for low > 0 && b.entries[low-1].Lock == key {
		low--
	}

	var candidates []Entry
	for i := low; i < len(b.entries) && b.entries[i].Lock == key; i++ {
		candidates = append(candidates, b.entries[i])
	}

	var total int32
	var legal []Entry
	for _, e := range candidates {
		mv := e.Move
		if mirror {
			mv = mv.Mirror()
		}
		if !board.LegalMove(mv) {
			continue
		}
		legal = append(legal, Entry{Lock: e.Lock, Move: mv, Weight: e.Weight})
		total += e.Weight
	}
	if total == 0 {
		return xq.NoMove
	}

	r := int32(rand.Intn(int(total))) + 1
	for _, e := range legal {
		r -= e.Weight
		if r <= 0 {
			return e.Move
		}
	}
	return xq.NoMove
}

// lockKey converts a board's 32-bit zobrist lock into the book's index
// key (the lock shifted right by one bit, unsigned, matching
// original_source/src/borad.rs's util::unsigned_right_shift(lock, 1)).
func lockKey(lock xq.Lock) int32 {
	return int32(uint32(lock) >> 1)
}

// search performs a classic binary search for key over entries sorted
// ascending by Lock, grounded on original_source/src/book.rs::Book::search.
func (b *Book) search(key int32) (int, bool) {
	lo, hi := 0, len(b.entries)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case b.entries[mid].Lock < key:
			lo = mid + 1
		case b.entries[mid].Lock > key:
			hi = mid - 1
		default:
			return mid, true
		}
	}
	return 0, false
}

// loadText parses the "lock,move,weight" line format the builder in
// original_source/src/book.rs produces.
func loadText(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("openingbook: line %d: expected 3 comma-separated fields, got %d", lineNo, len(fields))
		}
		lock, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("openingbook: line %d: bad lock: %w", lineNo, err)
		}
		move, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("openingbook: line %d: bad move: %w", lineNo, err)
		}
		weight, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("openingbook: line %d: bad weight: %w", lineNo, err)
		}
		entries = append(entries, Entry{Lock: int32(lock), Move: xq.Move(move), Weight: int32(weight)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func loadGob(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var entries []Entry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func saveGob(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(entries)
}
