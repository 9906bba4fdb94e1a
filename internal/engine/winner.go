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

import "github.com/frankkopp/xiangqi-go/internal/xq"

// Winner reports whether the game at b has already ended and, if so, who
// won. Grounded directly on engine.rs::winner(): the king-missing and
// checkmate checks both declare the opponent of the side to move the
// winner; when a repetition is not a draw, the repetition check follows
// RepValue's sign: a negative value (the side to move has been giving
// perpetual check) makes the opponent the winner, a positive one (the
// opponent has) makes the side to move the winner.
type Winner int

const (
	// WinnerNone means the game is still in progress.
	WinnerNone Winner = iota
	WinnerRed
	WinnerBlack
	// WinnerDraw means the game has ended with neither side winning.
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerRed:
		return "red"
	case WinnerBlack:
		return "black"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// DetermineWinner evaluates b's termination status without mutating it.
// Order of checks matches winner(): checkmate, missing king, repetition
// (with perpetual-check adjudication), then insufficient material.
func (e *Engine) DetermineWinner() Winner {
	return determineWinner(boardAdapter{e.board})
}

func determineWinner(b boardLike) Winner {
	sd := b.sideToMove()

	if b.hasMate() {
		return winnerOf(1 - sd)
	}

	if !b.hasKing(sd) {
		return winnerOf(1 - sd)
	}

	if status := b.repStatus(3); status != 0 {
		vl := b.repValue(status)
		if vl > -xq.WinValue && vl < xq.WinValue {
			return WinnerDraw
		}
		if vl < 0 {
			return winnerOf(1 - sd)
		}
		return winnerOf(sd)
	}

	if !b.hasFightingMaterialAnywhere() {
		return WinnerDraw
	}

	return WinnerNone
}

func winnerOf(sd int) Winner {
	if sd == int(xq.Red) {
		return WinnerRed
	}
	return WinnerBlack
}

// boardLike is the narrow slice of position.Board's surface the winner
// oracle needs; boardAdapter supplies it from a real board, and any
// other implementation can stand in for one.
type boardLike interface {
	sideToMove() int
	hasMate() bool
	hasKing(sd int) bool
	repStatus(recur int) int
	repValue(status int) xq.Value
	hasFightingMaterialAnywhere() bool
}
