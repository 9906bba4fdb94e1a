package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xiangqi-go/internal/xq"
)

func toMoves(raw []int) []xq.Move {
	out := make([]xq.Move, len(raw))
	for i, v := range raw {
		out[i] = xq.Move(v)
	}
	return out
}

func TestSortDescendingByScore(t *testing.T) {
	moves := toMoves([]int{22599, 34697, 30615, 34713, 46758, 34728, 46760, 13749, 46773})
	scores := []int{29, 36, 26, 39, 28, 39, 29, 26, 26}

	Sort(moves, scores)

	wantMoves := toMoves([]int{34728, 34713, 34697, 22599, 46760, 46758, 30615, 13749, 46773})
	wantScores := []int{39, 39, 36, 29, 29, 28, 26, 26, 26}

	assert.Equal(t, wantScores, scores)
	assert.Equal(t, wantMoves, moves)
}

func TestSortIsDescendingForArbitraryInput(t *testing.T) {
	moves := toMoves([]int{1, 2, 3, 4, 5, 6, 7})
	scores := []int{5, 1, 9, 3, 9, 0, 2}

	Sort(moves, scores)

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i])
	}
}

func TestSortHandlesEmptyAndSingleton(t *testing.T) {
	var moves []xq.Move
	var scores []int
	assert.NotPanics(t, func() { Sort(moves, scores) })

	moves = toMoves([]int{7})
	scores = []int{1}
	Sort(moves, scores)
	assert.Equal(t, []int{1}, scores)
}
