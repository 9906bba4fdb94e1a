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

package openingbook

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

const startFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

func firstLegalMove(t *testing.T, b *position.Board) xq.Move {
	t.Helper()
	moves, _ := b.GenerateMoves(false)
	for _, mv := range moves {
		if b.LegalMove(mv) {
			return mv
		}
	}
	t.Fatal("no legal move found")
	return xq.NoMove
}

func TestSearchFindsExactLockMatch(t *testing.T) {
	bk := &Book{entries: []Entry{
		{Lock: 10, Move: xq.NewMove(0, 1), Weight: 1},
		{Lock: 20, Move: xq.NewMove(2, 3), Weight: 1},
		{Lock: 30, Move: xq.NewMove(4, 5), Weight: 1},
	}}
	idx, found := bk.search(20)
	require.True(t, found)
	assert.Equal(t, int32(20), bk.entries[idx].Lock)

	_, found = bk.search(25)
	assert.False(t, found)
}

func TestProbePlaysTheSoleLegalCandidateForThePosition(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	mv := firstLegalMove(t, b)

	bk := &Book{entries: []Entry{{Lock: lockKey(b.ZobristLock), Move: mv, Weight: 1}}}
	assert.Equal(t, mv, bk.Probe(b))
}

func TestProbeDropsAnIllegalCandidate(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	// A rook "move" from an empty square is never legal from the start
	// position, so the weighted pool is empty and Probe must fall through.
	illegal := xq.NewMove(xq.Square(0x44), xq.Square(0x45))
	bk := &Book{entries: []Entry{{Lock: lockKey(b.ZobristLock), Move: illegal, Weight: 1}}}
	assert.Equal(t, xq.NoMove, bk.Probe(b))
}

func TestProbeFallsBackToTheMirroredPosition(t *testing.T) {
	// The start position is its own mirror image, so an asymmetric
	// position is used: only its mirrored lock is in the book.
	b, err := position.NewBoardFEN("4kab2/4a4/8b/9/9/9/9/9/9/4K1R2 w")
	require.NoError(t, err)
	mirrored := b.Mirror()
	mv := firstLegalMove(t, mirrored)

	bk := &Book{entries: []Entry{{Lock: lockKey(mirrored.ZobristLock), Move: mv, Weight: 1}}}
	got := bk.Probe(b)
	require.NotEqual(t, xq.NoMove, got)
	assert.Equal(t, mv.Mirror(), got)
	assert.True(t, b.LegalMove(got))
}

func TestProbeReturnsNoMoveWhenBookIsEmpty(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	bk := NewBook()
	assert.Equal(t, xq.NoMove, bk.Probe(b))
}

func TestInitializeParsesTextFormatAndWritesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	writeBookText(t, path, []Entry{
		{Lock: 30, Move: xq.NewMove(4, 5), Weight: 2},
		{Lock: 10, Move: xq.NewMove(0, 1), Weight: 1},
		{Lock: 20, Move: xq.NewMove(2, 3), Weight: 3},
	})

	bk := NewBook()
	require.NoError(t, bk.Initialize(path, Text, true, false))
	require.Equal(t, 3, bk.NumberOfEntries())
	assert.True(t, sortedAscending(bk.entries))

	cached := NewBook()
	require.NoError(t, cached.Initialize(path+".cache", Binary, false, false))
	assert.Equal(t, bk.entries, cached.entries)
}

func TestInitializeIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	writeBookText(t, path, []Entry{{Lock: 1, Move: xq.NewMove(0, 1), Weight: 1}})

	bk := NewBook()
	require.NoError(t, bk.Initialize(path, Text, false, false))
	require.NoError(t, bk.Initialize(path, Text, false, false))
	assert.Equal(t, 1, bk.NumberOfEntries())
}

func TestResetClearsLoadedEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	writeBookText(t, path, []Entry{{Lock: 1, Move: xq.NewMove(0, 1), Weight: 1}})

	bk := NewBook()
	require.NoError(t, bk.Initialize(path, Text, false, false))
	bk.Reset()
	assert.Equal(t, 0, bk.NumberOfEntries())
}

func writeBookText(t *testing.T, path string, entries []Entry) {
	t.Helper()
	var lines string
	for _, e := range entries {
		lines += fmt.Sprintf("%d,%d,%d\n", e.Lock, int32(e.Move), e.Weight)
	}
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))
}

func sortedAscending(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Lock > entries[i].Lock {
			return false
		}
	}
	return true
}
