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

// Package moveorder provides the shellsort used everywhere moves need
// reordering by a parallel score vector: move generation scoring, the move
// picker's GEN phase, and quiescence capture ordering.
package moveorder

import "github.com/frankkopp/xiangqi-go/internal/xq"

// gaps is the fixed Shell sort gap sequence the engine sorts with.
var gaps = [...]int{1, 4, 13, 40, 121, 364, 1093}

// Sort reorders moves and scores together so that scores are descending.
// Both slices must have equal length; sorting is not required to be stable.
func Sort(moves []xq.Move, scores []int) {
	n := len(scores)
	if n != len(moves) {
		panic("moveorder.Sort: moves and scores length mismatch")
	}
	gi := len(gaps) - 1
	for gi >= 0 && gaps[gi] >= n {
		gi--
	}
	for ; gi >= 0; gi-- {
		gap := gaps[gi]
		for i := gap; i < n; i++ {
			scoreTmp := scores[i]
			moveTmp := moves[i]
			j := i
			for j >= gap && scores[j-gap] < scoreTmp {
				scores[j] = scores[j-gap]
				moves[j] = moves[j-gap]
				j -= gap
			}
			scores[j] = scoreTmp
			moves[j] = moveTmp
		}
	}
}
