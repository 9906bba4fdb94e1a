package xq

import (
	"fmt"

	"github.com/frankkopp/xiangqi-go/internal/tables"
)

// Square is an index on the 16x16 superboard; file = sq&15, rank = sq>>4.
type Square int

// NoSquare is used as a sentinel where "no square" must be distinguished
// from a valid board index.
const NoSquare Square = -1

// NewSquare builds a square from internal file/rank coordinates.
func NewSquare(x, y int) Square {
	return Square(x | (y << 4))
}

// File and Rank return the internal (not FEN) coordinates.
func (s Square) File() int { return int(s) & 0x0f }
func (s Square) Rank() int { return int(s) >> 4 }

// OnBoard reports whether s lies on the 9x10 playing surface.
func (s Square) OnBoard() bool {
	return tables.InBroad(int(s))
}

// Mirror reflects a square horizontally, used for book mirroring.
func (s Square) Mirror() Square {
	x := s.File()
	mirroredX := tables.FileLeft + tables.FileRight - x
	return NewSquare(mirroredX, s.Rank())
}

// Flip reflects a square through the centre of the board (254 - s), which
// mirrors both its rank and its file; used to read red's PST at a black
// piece's position.
func (s Square) Flip() Square {
	return Square(254) - s
}

// ForwardStep returns the square directly "forward" for side c: up the
// board (toward lower y) for red, down the board for black.
func ForwardStep(s Square, c Color) Square {
	if c == Red {
		return s - 16
	}
	return s + 16
}

// ICCSFile and ICCSRank translate a square to the ICCS coordinate letters,
// per SPEC_FULL.md section 9's mapping: row = 12 - (sq>>4), col = (sq&15) - 3.
func (s Square) ICCSFile() byte {
	return byte('a' + (s.File() - tables.FileLeft))
}

func (s Square) ICCSRank() byte {
	return byte('0' + (tables.RankBottom - s.Rank()))
}

func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("sq(%d)", int(s))
	}
	return string([]byte{s.ICCSFile(), s.ICCSRank()})
}
