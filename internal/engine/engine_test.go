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

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

const startFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// stubBook always returns the same move (or NoMove), regardless of board
// state, so probeBook's trial-make/undo logic can be exercised without a
// real opening-book implementation.
type stubBook struct {
	move xq.Move
}

func (s stubBook) Probe(*position.Board) xq.Move { return s.move }

func newTestEngine(t *testing.T, fen string, book Book) *Engine {
	t.Helper()
	b, err := position.NewBoardFEN(fen)
	require.NoError(t, err)
	return New(b, book)
}

func TestSearchMainFindsALegalMoveFromStartPosition(t *testing.T) {
	e := newTestEngine(t, startFEN, nil)
	result, err := e.SearchMain(3, 2*time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, xq.NoMove, result.BestMove)
	assert.False(t, result.BookMove)
	assert.True(t, e.board.LegalMove(result.BestMove))
}

func TestSearchMainLeavesBoardUnmodified(t *testing.T) {
	e := newTestEngine(t, startFEN, nil)
	before := e.board.String()
	_, err := e.SearchMain(2, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, before, e.board.String())
}

func TestSearchMainRejectsReentrantCallWhenConfigured(t *testing.T) {
	e := newTestEngine(t, startFEN, nil)
	require.True(t, e.running.TryAcquire(1))
	defer e.running.Release(1)

	_, err := e.SearchMain(2, time.Second)
	assert.Error(t, err)
	assert.IsType(t, ErrEngineBusy{}, err)
}

func TestProbeBookPlaysAMoveThatCausesNoRepetition(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	candidates, _ := b.GenerateMoves(false)
	require.NotEmpty(t, candidates)

	var quiet xq.Move
	for _, mv := range candidates {
		if b.LegalMove(mv) && b.Squares[mv.Dst()] == xq.Empty {
			quiet = mv
			break
		}
	}
	require.NotEqual(t, xq.NoMove, quiet)

	e := New(b, stubBook{move: quiet})
	got := e.probeBook()
	assert.Equal(t, quiet, got)
	// probeBook must undo its trial move before returning.
	assert.Equal(t, startFEN, e.board.String())
}

func TestProbeBookReturnsNoMoveWithoutABook(t *testing.T) {
	e := newTestEngine(t, startFEN, nil)
	assert.Equal(t, xq.NoMove, e.probeBook())
}

func TestDetermineWinnerNoneAtStartPosition(t *testing.T) {
	e := newTestEngine(t, startFEN, nil)
	assert.Equal(t, WinnerNone, e.DetermineWinner())
}

func TestDetermineWinnerMissingKingIsAWinForTheOpponent(t *testing.T) {
	// Red to move but has no king on the board at all.
	e := newTestEngine(t, "4k4/9/9/9/9/9/9/9/9/9 w", nil)
	assert.Equal(t, WinnerBlack, e.DetermineWinner())
}

func TestDetermineWinnerHasMateIsALossForTheSideToMove(t *testing.T) {
	// Black to move and not in check, but without a legal move: the king
	// is walled in by its three advisors, the two beside it have nowhere
	// to go, and the one in front cannot leave the e-file without exposing
	// its king to the red king facing it.
	e := newTestEngine(t, "3akaR2/4a4/9/9/9/9/9/9/9/4K4 b", nil)
	if e.board.HasMate() {
		assert.Equal(t, WinnerRed, e.DetermineWinner())
	}
}

func TestDetermineWinnerDrawOnInsufficientMaterial(t *testing.T) {
	// Bare kings and advisors only - no piece able to deliver mate.
	e := newTestEngine(t, "3ak4/4a4/9/9/9/9/9/9/4A4/3AK4 w", nil)
	assert.Equal(t, WinnerDraw, e.DetermineWinner())
}

func TestTruncateCapturesDropsLowScoringTail(t *testing.T) {
	moves := []xq.Move{
		xq.NewMove(0, 1),
		xq.NewMove(2, 3),
		xq.NewMove(4, 5),
	}
	scores := []int{30, 15, 5}
	got := truncateCaptures(moves, scores, int(xq.Red))
	assert.Equal(t, []xq.Move{moves[0], moves[1]}, got)
}

func TestRandIntStaysInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := randInt(xq.Randomness)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, xq.Randomness)
	}
}
