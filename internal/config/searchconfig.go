/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration holds the tunables of a single search_main
// invocation. This replaces the teacher's much larger searchConfiguration
// (SEE, LMR, LMP, null-move/razoring/futility knobs for a western-chess
// search with a far richer pruning repertoire) with the handful of knobs
// the core actually specifies: a direct-mapped TT sized by a power-of-two
// mask, the iterative-deepening depth ceiling, null-move margins/depth,
// and root-value randomness. Of these the engine reads only
// TranspositionMask and UseBook, and the CLI reads BookFormat;
// LimitDepth, Randomness, NullDepth, NullOkayMargin, NullSafeMargin and
// BookPath are loaded but not consulted - the search uses the fixed
// constants of package xq, and the CLI takes the book path from its
// -bookpath flag.
type searchConfiguration struct {
	TranspositionMask int
	LimitDepth        int
	Randomness        int
	NullDepth         int
	NullOkayMargin    int
	NullSafeMargin    int

	UseBook    bool
	BookPath   string
	BookFormat string
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.TranspositionMask = 65535
	Settings.Search.LimitDepth = 64
	Settings.Search.Randomness = 8
	Settings.Search.NullDepth = 2
	Settings.Search.NullOkayMargin = 200
	Settings.Search.NullSafeMargin = 400

	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/book.dat"
	Settings.Search.BookFormat = "binary"
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
