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

import "math/rand"

// ZobristKeyPlayer and ZobristLockPlayer are XORed into the position hash
// whenever the side to move flips. These two constants are named and valued
// exactly as in the reference engine's pregen module (a literal source
// constant, not one of the unavailable *.dat tables).
const (
	ZobristKeyPlayer  int32 = 1099503838
	ZobristLockPlayer int32 = 1730021002
)

// zobristSeed is fixed so every process generates byte-identical Zobrist
// tables; see DESIGN.md for why the original's exact tables could not be
// retrieved and reproduced instead.
const zobristSeed = 20260731

// pieceSlotCount is 14: seven roles per colour (red slots 0..6, black slots
// 7..13), matching history_index's LIMIT_HISTORY derivation.
const pieceSlotCount = 2 * RoleCount

// ZobristKey and ZobristLock are the per-(colour-role-slot, square) hash
// tables XORed by add_piece.
var (
	ZobristKey  [pieceSlotCount][256]int32
	ZobristLock [pieceSlotCount][256]int32
)

func init() {
	initZobrist()
}

func initZobrist() {
	src := rand.New(rand.NewSource(zobristSeed))
	for slot := 0; slot < pieceSlotCount; slot++ {
		for sq := 0; sq < 256; sq++ {
			ZobristKey[slot][sq] = src.Int31()
			ZobristLock[slot][sq] = src.Int31()
		}
	}
}
