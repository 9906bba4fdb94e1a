package movepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi-go/internal/history"
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

const startFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

func allMoves(mp *MovePicker) []xq.Move {
	var out []xq.Move
	for {
		mv := mp.Next()
		if mv == xq.NoMove {
			return out
		}
		out = append(out, mv)
	}
}

func TestHashMoveIsYieldedFirst(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	hist := history.NewTable()
	candidates, _ := b.GenerateMoves(false)
	require.NotEmpty(t, candidates)
	hashMove := candidates[len(candidates)-1]

	mp := New(b, hist, 0, hashMove)
	assert.Equal(t, hashMove, mp.Next())
}

func TestNoDuplicateMovesAcrossPhases(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	hist := history.NewTable()
	candidates, _ := b.GenerateMoves(false)
	require.NotEmpty(t, candidates)
	hashMove := candidates[0]
	hist.StoreKiller(2, candidates[1])

	mp := New(b, hist, 2, hashMove)
	seen := make(map[xq.Move]bool)
	for _, mv := range allMoves(mp) {
		assert.False(t, seen[mv], "move %s yielded twice", mv)
		seen[mv] = true
	}
	assert.Equal(t, len(candidates), len(seen))
}

func TestExhaustedPickerReturnsNoMove(t *testing.T) {
	b, err := position.NewBoardFEN(startFEN)
	require.NoError(t, err)
	hist := history.NewTable()
	mp := New(b, hist, 0, xq.NoMove)
	allMoves(mp)
	assert.Equal(t, xq.NoMove, mp.Next())
}

func TestInCheckPopulatesImmediatelyWithOnlyLegalMoves(t *testing.T) {
	// Black king in check from the red king facing it on the open e-file;
	// every move the picker yields must be legal to make.
	b, err := position.NewBoardFEN("4k4/9/9/9/9/9/9/9/9/4KR3 b")
	require.NoError(t, err)
	require.True(t, b.Checked())
	hist := history.NewTable()
	mp := New(b, hist, 0, xq.NoMove)
	assert.Equal(t, PhaseRest, mp.phase)
	moves := allMoves(mp)
	for _, mv := range moves {
		ok := b.MakeMove(mv)
		assert.True(t, ok)
		if ok {
			b.UndoMove()
		}
	}
}

func TestSingleReplySetWhenExactlyOneEscape(t *testing.T) {
	// Black king in check from the facing red king: stepping to d9 is the
	// only escape, as f9 lies on the red rook's file and e8 stays on the
	// e-file.
	b, err := position.NewBoardFEN("4k4/9/9/9/9/9/9/9/9/4KR3 b")
	require.NoError(t, err)
	require.True(t, b.Checked())
	hist := history.NewTable()
	mp := New(b, hist, 0, xq.NoMove)
	require.Len(t, mp.moves, 1)
	assert.True(t, mp.SingleReply)
}
