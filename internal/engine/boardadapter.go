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
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

// boardAdapter makes a *position.Board satisfy boardLike for
// DetermineWinner without adding winner-specific scans to the board type
// itself.
type boardAdapter struct {
	b *position.Board
}

func (a boardAdapter) sideToMove() int { return int(a.b.SideToMove) }

func (a boardAdapter) hasMate() bool { return a.b.HasMate() }

// hasKing reports whether sd still has a king piece anywhere on the
// board, per winner()'s "king captured" loss condition (Xiangqi has no
// castling/promotion, so a missing king can only mean it was captured,
// which legal play never allows, but the oracle checks it anyway, as the
// reference engine does, for positions set up directly from FEN).
func (a boardAdapter) hasKing(sd int) bool {
	king := xq.SideTag(xq.Color(sd)) + xq.Piece(xq.King)
	for sq := 0; sq < 256; sq++ {
		if a.b.Squares[sq] == king {
			return true
		}
	}
	return false
}

func (a boardAdapter) repStatus(recur int) int { return a.b.RepStatus(recur) }

func (a boardAdapter) repValue(status int) xq.Value { return a.b.RepValue(status) }

// hasFightingMaterialAnywhere reports whether any knight, rook, cannon or
// pawn remains on the board for either side - kings, advisors and
// bishops alone can never deliver mate, so their survival alone is an
// automatic draw per winner()'s insufficient-material check.
func (a boardAdapter) hasFightingMaterialAnywhere() bool {
	for sq := 0; sq < 256; sq++ {
		pc := a.b.Squares[sq]
		if pc == xq.Empty {
			continue
		}
		if pc.Role() > xq.Bishop {
			return true
		}
	}
	return false
}
