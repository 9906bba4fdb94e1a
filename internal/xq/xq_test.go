package xq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideTags(t *testing.T) {
	assert.Equal(t, Piece(8), SideTag(Red))
	assert.Equal(t, Piece(16), SideTag(Black))
	assert.Equal(t, Piece(16), OppSideTag(Red))
	assert.Equal(t, Piece(8), OppSideTag(Black))
}

func TestPieceRoleRoundTrip(t *testing.T) {
	p := NewPiece(Black, Rook)
	assert.True(t, p.IsBlack())
	assert.Equal(t, Rook, p.Role())
	assert.Equal(t, Black, p.Color())
}

func TestFenLetterRoundTrip(t *testing.T) {
	role, ok := PieceFromFenLetter('C')
	assert.True(t, ok)
	assert.Equal(t, Cannon, role)
	p := NewPiece(Red, role)
	assert.Equal(t, byte('C'), FenLetter(p))

	role, ok = PieceFromFenLetter('n')
	assert.False(t, ok, "fen letters are looked up case-sensitively by caller before this call")
	_ = role
}

func TestMoveSrcDst(t *testing.T) {
	src := NewSquare(4, 5)
	dst := NewSquare(6, 7)
	m := NewMove(src, dst)
	assert.Equal(t, src, m.Src())
	assert.Equal(t, dst, m.Dst())
}

func TestMoveMirror(t *testing.T) {
	src := NewSquare(3, 5)
	dst := NewSquare(11, 5)
	m := NewMove(src, dst)
	mm := m.Mirror()
	assert.Equal(t, NewSquare(11, 5), mm.Src())
	assert.Equal(t, NewSquare(3, 5), mm.Dst())
}

func TestNoMoveString(t *testing.T) {
	assert.Equal(t, "0000", NoMove.String())
}
