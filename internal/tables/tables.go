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

// Package tables holds the engine's immutable precomputed arrays: board
// membership, palace membership, the one-step span classifier, the
// knight-leg pin offsets, piece-square values and the Zobrist key/lock
// tables. Everything here is built once at package init and never mutated
// afterwards, so it may be shared freely across Board and Engine instances.
package tables

// Board geometry constants, directly named after the reference engine's
// pregen module.
const (
	RankTop    = 3
	RankBottom = 12
	FileLeft   = 3
	FileRight  = 11
)

// Role indices, shared by red and black piece codes.
const (
	RoleKing = iota
	RoleAdvisor
	RoleBishop
	RoleKnight
	RoleRook
	RoleCannon
	RolePawn
	RoleCount
)

// Step deltas for non-sliding pieces, addressed on the 16-wide superboard.
var (
	KingDelta        = [4]int{-16, -1, 1, 16}
	AdvisorDelta     = [4]int{-17, -15, 15, 17}
	KnightDelta      = [4][2]int{{-33, -31}, {-18, 14}, {-14, 18}, {31, 33}}
	KnightCheckDelta = [4][2]int{{-33, -18}, {-31, -14}, {14, 31}, {18, 33}}
)

// MvvValue is indexed by role (pc & 7); used to build MVV-LVA capture scores.
var MvvValue = [8]int{50, 10, 10, 30, 40, 30, 20, 0}

// InBoard marks squares that lie on the 9x10 playing surface, including the
// river but excluding the sentinel ring. A sentinel index (any square a
// stepped generator walks off the board) is false here.
var InBoard [256]bool

// InFort marks the 3x3 palace squares for either side.
var InFort [256]bool

// legal span classification values, stored in legalSpan keyed by
// dst-src+256.
const (
	spanKing    = 1
	spanAdvisor = 2
	spanBishop  = 3
)

var legalSpan [512]int8

// knightPin holds, for every possible dst-src delta (+256), the offset from
// src to the knight's blocking ("leg") square. Deltas that are not one of
// the eight knight jumps map to 0, which safely fails the pin != src test in
// legality checks.
var knightPin [512]int

func init() {
	initBoardMasks()
	initSpanTables()
	initKnightPin()
}

func initBoardMasks() {
	for y := RankTop; y <= RankBottom; y++ {
		for x := FileLeft; x <= FileRight; x++ {
			InBoard[x|(y<<4)] = true
		}
	}
	for y := RankTop; y <= RankTop+2; y++ {
		for x := FileLeft + 3; x <= FileLeft+5; x++ {
			InFort[x|(y<<4)] = true
		}
	}
	for y := RankBottom - 2; y <= RankBottom; y++ {
		for x := FileLeft + 3; x <= FileLeft+5; x++ {
			InFort[x|(y<<4)] = true
		}
	}
}

func initSpanTables() {
	for _, d := range KingDelta {
		legalSpan[d+256] = spanKing
	}
	for _, d := range AdvisorDelta {
		legalSpan[d+256] = spanAdvisor
		legalSpan[2*d+256] = spanBishop
	}
}

func initKnightPin() {
	for i, pair := range KnightDelta {
		for _, d := range pair {
			knightPin[d+256] = KingDelta[i]
		}
	}
}

// InBroad reports whether sq is a legal on-board square (name kept close to
// the reference engine's in_broad for readers cross-checking the port).
func InBroad(sq int) bool {
	if sq < 0 || sq >= 256 {
		return false
	}
	return InBoard[sq]
}

// KingSpan reports whether src->dst is a single orthogonal step.
func KingSpan(src, dst int) bool {
	return legalSpan[dst-src+256] == spanKing
}

// AdvisorSpan reports whether src->dst is a single diagonal step.
func AdvisorSpan(src, dst int) bool {
	return legalSpan[dst-src+256] == spanAdvisor
}

// BishopSpan reports whether src->dst is a two-square diagonal step.
func BishopSpan(src, dst int) bool {
	return legalSpan[dst-src+256] == spanBishop
}

// BishopPin returns the midpoint ("eye") square of a bishop's two-step move.
func BishopPin(src, dst int) int {
	return (src + dst) >> 1
}

// KnightPin returns the leg square a knight move from src to dst must find
// empty. Returns src itself for deltas that are not a knight jump.
func KnightPin(src, dst int) int {
	return src + knightPin[dst-src+256]
}

// HomeHalf reports whether sq lies on side sd's own half of the board.
func HomeHalf(sq, sd int) bool {
	return (sq & 0x80) != (sd << 7)
}

// AwayHalf reports whether sq lies across the river from side sd.
func AwayHalf(sq, sd int) bool {
	return (sq & 0x80) == (sd << 7)
}

// SameHalf reports whether src and dst are on the same side of the river.
func SameHalf(src, dst int) bool {
	return (src^dst)&0x80 == 0
}

// SameRank reports whether src and dst share a rank.
func SameRank(src, dst int) bool {
	return (src^dst)&0xf0 == 0
}

// SameFile reports whether src and dst share a file.
func SameFile(src, dst int) bool {
	return (src^dst)&0x0f == 0
}

// MvvLva scores a capture of pc by an attacker of least-valuable-attacker
// weight lva.
func MvvLva(pc, lva int) int {
	return MvvValue[pc&7] - lva
}
