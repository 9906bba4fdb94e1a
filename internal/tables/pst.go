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

package tables

// baseValue is the material worth of each role, red's perspective, before
// any positional adjustment.
var baseValue = [RoleCount]int{
	RoleKing:    0, // cancels in material diff, both sides always have one
	RoleAdvisor: 200,
	RoleBishop:  200,
	RoleKnight:  450,
	RoleRook:    600,
	RoleCannon:  450,
	RolePawn:    100,
}

// PieceValue[role][sq] is the red-side piece-square table: base material
// value plus a centre/advancement bonus. The original engine's tuned tables
// are not part of this retrieval pack (see DESIGN.md); these values are a
// documented, deterministic replacement built from the same role-value
// hierarchy rather than a literal port.
var PieceValue [RoleCount][256]int

func init() {
	initPieceValue()
}

func initPieceValue() {
	const centreX = FileLeft + 4 // the e-file, centre of the board
	for role := 0; role < RoleCount; role++ {
		for y := RankTop; y <= RankBottom; y++ {
			for x := FileLeft; x <= FileRight; x++ {
				sq := x | (y << 4)
				if !InBoard[sq] {
					continue
				}
				PieceValue[role][sq] = baseValue[role] + bonus(role, x, y, centreX)
			}
		}
	}
}

// bonus returns a small positional adjustment rewarding central files and,
// for pawns, advancement toward the opponent's side.
func bonus(role, x, y, centreX int) int {
	switch role {
	case RoleKing, RoleAdvisor, RoleBishop:
		return 0
	case RoleRook, RoleCannon, RoleKnight:
		dx := x - centreX
		if dx < 0 {
			dx = -dx
		}
		return (4 - dx) * 2
	case RolePawn:
		advance := RankBottom - y
		return advance * 4
	default:
		return 0
	}
}
