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

// Package xq holds the small value types shared across the engine: piece
// codes, squares, colours, move codes and search values. Unlike the
// bitboard-oriented pkg/types this replaces, these types are built around
// the 16x16 sentinel board and 16-bit move codes the core is specified on.
package xq

// Color is the side to move: 0=red, 1=black.
type Color int

const (
	Red Color = iota
	Black
)

// Opp returns the other side.
func (c Color) Opp() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Piece is a value in [0,23]: 0 means empty, 8+role is a red piece,
// 16+role is a black piece.
type Piece int

// Role indices, re-exported from tables for convenience at this layer.
const (
	King = iota
	Advisor
	Bishop
	Knight
	Rook
	Cannon
	Pawn
)

// Empty is the piece code for an unoccupied square.
const Empty Piece = 0

// SideTag returns the piece-code base for side c (8 for red, 16 for black).
func SideTag(c Color) Piece {
	return Piece(8 + (int(c) << 3))
}

// OppSideTag returns the piece-code base for c's opponent.
func OppSideTag(c Color) Piece {
	return Piece(16 - (int(c) << 3))
}

// NewPiece builds a piece code from a side and a role.
func NewPiece(c Color, role int) Piece {
	return SideTag(c) + Piece(role)
}

// IsRed reports whether the piece belongs to red.
func (p Piece) IsRed() bool {
	return p >= 8 && p < 16
}

// IsBlack reports whether the piece belongs to black.
func (p Piece) IsBlack() bool {
	return p >= 16
}

// Role returns the piece's role index, undefined for Empty.
func (p Piece) Role() int {
	if p.IsRed() {
		return int(p - 8)
	}
	return int(p - 16)
}

// Color returns the piece's side; only valid for non-empty pieces.
func (p Piece) Color() Color {
	if p.IsRed() {
		return Red
	}
	return Black
}

var fenLetters = [24]byte{
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
	'K', 'A', 'B', 'N', 'R', 'C', 'P', ' ',
	'k', 'a', 'b', 'n', 'r', 'c', 'p', ' ',
}

// FenLetter returns the FEN character for a piece code, or a space for
// Empty / out-of-range codes.
func FenLetter(p Piece) byte {
	if p < 0 || int(p) >= len(fenLetters) {
		return ' '
	}
	return fenLetters[p]
}

// PieceFromFenLetter maps a FEN letter to a role, accepting both the
// classic (B bishop / H knight) and the alternate (E elephant / N knight)
// letters the reference engine accepts. ok is false for any other rune.
func PieceFromFenLetter(c byte) (role int, ok bool) {
	switch c {
	case 'K':
		return King, true
	case 'A':
		return Advisor, true
	case 'B', 'E':
		return Bishop, true
	case 'H', 'N':
		return Knight, true
	case 'R':
		return Rook, true
	case 'C':
		return Cannon, true
	case 'P':
		return Pawn, true
	default:
		return 0, false
	}
}
