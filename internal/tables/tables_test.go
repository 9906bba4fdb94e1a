package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBoardMatchesFileRankBounds(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			sq := x | (y << 4)
			want := x >= FileLeft && x <= FileRight && y >= RankTop && y <= RankBottom
			assert.Equal(t, want, InBoard[sq], "square %d (x=%d,y=%d)", sq, x, y)
		}
	}
}

func TestInFortIsNineSquaresPerSide(t *testing.T) {
	count := 0
	for sq := 0; sq < 256; sq++ {
		if InFort[sq] {
			count++
		}
	}
	assert.Equal(t, 18, count)
}

func TestKingSpanOnlyOrthogonalSteps(t *testing.T) {
	src := (FileLeft + 4) | (6 << 4)
	assert.True(t, KingSpan(src, src-16))
	assert.True(t, KingSpan(src, src+1))
	assert.False(t, KingSpan(src, src-17))
	assert.False(t, KingSpan(src, src+32))
}

func TestBishopPinIsMidpoint(t *testing.T) {
	src := 50
	dst := src + 2*AdvisorDelta[3]
	assert.Equal(t, src+AdvisorDelta[3], BishopPin(src, dst))
}

func TestKnightPinMatchesLegOfEachJump(t *testing.T) {
	for i, pair := range KnightDelta {
		for _, d := range pair {
			src := 120
			dst := src + d
			assert.Equal(t, src+KingDelta[i], KnightPin(src, dst))
		}
	}
}

func TestKnightPinRejectsNonKnightDelta(t *testing.T) {
	src := 120
	assert.Equal(t, src, KnightPin(src, src+1))
}

func TestZobristTablesAreNonDegenerate(t *testing.T) {
	seen := map[int32]bool{}
	dup := 0
	for slot := 0; slot < pieceSlotCount; slot++ {
		for sq := 0; sq < 256; sq++ {
			k := ZobristKey[slot][sq]
			if seen[k] {
				dup++
			}
			seen[k] = true
		}
	}
	assert.Less(t, dup, 10, "zobrist key table should be close to collision-free")
}

func TestPieceValueRedBlackAsymmetryViaFlip(t *testing.T) {
	sq := (FileLeft + 4) | (RankBottom << 4)
	flipped := 254 - sq
	assert.NotEqual(t, PieceValue[RolePawn][sq], PieceValue[RolePawn][flipped])
}
