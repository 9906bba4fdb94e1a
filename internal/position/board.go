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

// Package position implements the Xiangqi board: piece placement, side to
// move, incremental Zobrist hashing and material scoring, the move stack
// used for unmake and repetition detection, and check/legality testing.
// This replaces the teacher's bitboard-oriented internal/position with the
// 16x16 sentinel-array representation the core is specified on; the shape
// of the API (NewBoard/NewBoardFEN, DoMove-style make/unmake, HasCheck,
// String, which renders the FEN) is kept from the teacher.
package position

import (
	"github.com/frankkopp/xiangqi-go/internal/tables"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

// StartFEN is the standard Xiangqi opening array.
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// Moved is a single entry in the move stack: enough to undo a make_move,
// a null_move, or to walk repetition history.
type Moved struct {
	Move      xq.Move
	ZobristKey xq.Key
	Captured  xq.Piece
	WasCheck  bool
}

// Board is the mutable Xiangqi position. The zero value is not usable;
// construct with NewBoard or NewBoardFEN.
type Board struct {
	SideToMove  xq.Color
	ZobristKey  xq.Key
	ZobristLock xq.Lock
	VlRed       xq.Value
	VlBlack     xq.Value
	Distance    int
	Squares     [256]xq.Piece
	moves       []Moved
}

// NewBoard returns an empty board (no pieces, red to move, distance 0) with
// just the irreversible sentinel on the move stack.
func NewBoard() *Board {
	b := &Board{}
	b.setIrreversible()
	return b
}

// NewBoardFEN builds a board from a FEN string; see FromFEN for the
// accepted grammar.
func NewBoardFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.FromFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// setIrreversible clears the move stack down to the sentinel entry that
// marks "no earlier position to compare against" for repetition detection.
func (b *Board) setIrreversible() {
	b.Distance = 0
	b.moves = []Moved{{Move: xq.NoMove, Captured: xq.Empty, WasCheck: b.Checked()}}
}

// AddPiece places (add=true) or removes (add=false) pc at sq, incrementally
// maintaining material/PST scores and the Zobrist key/lock.
func (b *Board) AddPiece(sq xq.Square, pc xq.Piece, add bool) {
	if add {
		b.Squares[sq] = pc
	} else {
		b.Squares[sq] = xq.Empty
	}

	var slot int
	if pc.IsRed() {
		slot = pc.Role()
		score := tables.PieceValue[pc.Role()][sq]
		if add {
			b.VlRed += xq.Value(score)
		} else {
			b.VlRed -= xq.Value(score)
		}
	} else {
		slot = pc.Role() + 7
		score := tables.PieceValue[pc.Role()][sq.Flip()]
		if add {
			b.VlBlack += xq.Value(score)
		} else {
			b.VlBlack -= xq.Value(score)
		}
	}
	b.ZobristKey ^= xq.Key(tables.ZobristKey[slot][sq])
	b.ZobristLock ^= xq.Lock(tables.ZobristLock[slot][sq])
}

// ChangeSide flips the side to move and XORs in the player Zobrist terms.
func (b *Board) ChangeSide() {
	b.SideToMove = b.SideToMove.Opp()
	b.ZobristKey ^= xq.Key(tables.ZobristKeyPlayer)
	b.ZobristLock ^= xq.Lock(tables.ZobristLockPlayer)
}

// Checked reports whether the side to move's king is currently attacked.
func (b *Board) Checked() bool {
	self := xq.SideTag(b.SideToMove)
	opp := xq.OppSideTag(b.SideToMove)
	kingPiece := self + xq.Piece(xq.King)

	for src := 0; src < 256; src++ {
		if b.Squares[src] != kingPiece {
			continue
		}
		return b.kingAttacked(xq.Square(src), opp)
	}
	return false
}

func (b *Board) kingAttacked(src xq.Square, opp xq.Piece) bool {
	oppPawn := opp + xq.Piece(xq.Pawn)
	if b.Squares[xq.ForwardStep(src, b.SideToMove)] == oppPawn {
		return true
	}
	if b.Squares[src-1] == oppPawn {
		return true
	}
	if b.Squares[src+1] == oppPawn {
		return true
	}

	oppKnight := opp + xq.Piece(xq.Knight)
	for i := 0; i < 4; i++ {
		if b.Squares[int(src)+tables.AdvisorDelta[i]] != xq.Empty {
			continue
		}
		for n := 0; n < 2; n++ {
			if b.Squares[int(src)+tables.KnightCheckDelta[i][n]] == oppKnight {
				return true
			}
		}
	}

	oppRook := opp + xq.Piece(xq.Rook)
	oppKing := opp + xq.Piece(xq.King)
	oppCannon := opp + xq.Piece(xq.Cannon)
	for i := 0; i < 4; i++ {
		delta := tables.KingDelta[i]
		dst := int(src) + delta
		for tables.InBroad(dst) {
			pc := b.Squares[dst]
			if pc != xq.Empty {
				if pc == oppRook || pc == oppKing {
					return true
				}
				break
			}
			dst += delta
		}
		dst += delta
		for tables.InBroad(dst) {
			pc := b.Squares[dst]
			if pc != xq.Empty {
				if pc == oppCannon {
					return true
				}
				break
			}
			dst += delta
		}
	}
	return false
}

// HasCheck reports whether the move just made (the top of the stack)
// delivered check.
func (b *Board) HasCheck() bool {
	return b.moves[len(b.moves)-1].WasCheck
}

// Captured reports whether the move just made was a capture.
func (b *Board) Captured() bool {
	return b.moves[len(b.moves)-1].Captured != xq.Empty
}

func (b *Board) movePiece(mv xq.Move) Moved {
	keyBefore := b.ZobristKey
	src, dst := mv.Src(), mv.Dst()
	captured := b.Squares[dst]
	if captured != xq.Empty {
		b.AddPiece(dst, captured, false)
	}
	mover := b.Squares[src]
	b.AddPiece(src, mover, false)
	b.AddPiece(dst, mover, true)
	return Moved{Move: mv, ZobristKey: keyBefore, Captured: captured}
}

func (b *Board) undoMovePiece(m Moved) {
	src, dst := m.Move.Src(), m.Move.Dst()
	mover := b.Squares[dst]
	b.AddPiece(dst, mover, false)
	b.AddPiece(src, mover, true)
	if m.Captured != xq.Empty {
		b.AddPiece(dst, m.Captured, true)
	}
}

// MakeMove plays mv. It returns false (and leaves the board untouched) if
// doing so would leave the mover's own king in check.
func (b *Board) MakeMove(mv xq.Move) bool {
	moved := b.movePiece(mv)
	if b.Checked() {
		b.undoMovePiece(moved)
		return false
	}
	b.ChangeSide()
	moved.WasCheck = b.Checked()
	b.moves = append(b.moves, moved)
	b.Distance++
	return true
}

// UndoMove reverses the most recent MakeMove.
func (b *Board) UndoMove() {
	b.Distance--
	last := len(b.moves) - 1
	moved := b.moves[last]
	b.moves = b.moves[:last]
	b.ChangeSide()
	b.undoMovePiece(moved)
}

// NullMove passes the turn without moving a piece, used by null-move
// pruning in search.
func (b *Board) NullMove() {
	b.moves = append(b.moves, Moved{Move: xq.NoMove, ZobristKey: b.ZobristKey})
	b.ChangeSide()
	b.Distance++
}

// UndoNullMove reverses NullMove.
func (b *Board) UndoNullMove() {
	b.Distance--
	b.ChangeSide()
	b.moves = b.moves[:len(b.moves)-1]
}

// MateValue, BanValue and DrawValue are the terminal scores relative to the
// current search distance from root.
func (b *Board) MateValue() xq.Value {
	return xq.Value(b.Distance) - xq.MateValue
}

func (b *Board) BanValue() xq.Value {
	return xq.Value(b.Distance) - xq.BanValue
}

func (b *Board) DrawValue() xq.Value {
	if b.Distance&1 == 0 {
		return -xq.DrawValue
	}
	return xq.DrawValue
}

// Evaluate returns the static material+PST evaluation from the side to
// move's perspective. It is adjusted by one point whenever it would
// otherwise collide numerically with DrawValue, per invariant 3 in
// SPEC_FULL.md section 11.
func (b *Board) Evaluate() xq.Value {
	var vl xq.Value
	if b.SideToMove == xq.Red {
		vl = (b.VlRed - b.VlBlack) + xq.Advanced
	} else {
		vl = (b.VlBlack - b.VlRed) + xq.Advanced
	}
	if vl == b.DrawValue() {
		vl--
	}
	return vl
}

// NullOkay reports whether the side to move has enough material on the
// board to try a null move at all.
func (b *Board) NullOkay() bool {
	if b.SideToMove == xq.Red {
		return b.VlRed > xq.NullOkayMargin
	}
	return b.VlBlack > xq.NullOkayMargin
}

// NullSafe reports whether a null-move fail-high can be trusted without a
// verification re-search.
func (b *Board) NullSafe() bool {
	if b.SideToMove == xq.Red {
		return b.VlRed > xq.NullSafeMargin
	}
	return b.VlBlack > xq.NullSafeMargin
}

// Mirror returns a horizontally reflected copy of the board, used only for
// the opening book's second probe.
func (b *Board) Mirror() *Board {
	m := NewBoard()
	for sq := 0; sq < 256; sq++ {
		pc := b.Squares[sq]
		if pc != xq.Empty {
			m.AddPiece(xq.Square(sq).Mirror(), pc, true)
		}
	}
	if b.SideToMove == xq.Black {
		m.ChangeSide()
	}
	return m
}

// HistoryIndex maps a move to its slot in the flat history-heuristic table.
func (b *Board) HistoryIndex(mv xq.Move) int {
	return (int(b.Squares[mv.Src()])-8)<<8 + int(mv.Dst())
}

// HasMate reports whether the side to move has no legal response at all
// (checkmate or, since Xiangqi has no stalemate draw, any other position
// with zero legal moves is equally a loss).
func (b *Board) HasMate() bool {
	moves, _ := b.GenerateMoves(false)
	for _, mv := range moves {
		if b.MakeMove(mv) {
			b.UndoMove()
			return false
		}
	}
	return true
}
