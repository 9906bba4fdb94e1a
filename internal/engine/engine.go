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

// Package engine drives the iterative-deepening PVS search over a
// position.Board: book probe, transposition-table-backed alpha-beta with
// null-move pruning and a quiescence tail, and the winner/termination
// oracle. It replaces the teacher's goroutine-driven, UCI-coupled
// internal/search with a synchronous call (SearchMain) the way
// original_source/src/engine.rs's search_main is synchronous, since
// pondering and multi-threaded search are out of scope here; the
// teacher's semaphore-gated re-entrancy idiom is kept, repurposed from
// gating a search goroutine to rejecting a re-entrant SearchMain call.
package engine

import (
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi-go/internal/config"
	"github.com/frankkopp/xiangqi-go/internal/history"
	"github.com/frankkopp/xiangqi-go/internal/logging"
	"github.com/frankkopp/xiangqi-go/internal/moveorder"
	"github.com/frankkopp/xiangqi-go/internal/movepicker"
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/tables"
	"github.com/frankkopp/xiangqi-go/internal/transpositiontable"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

var out = message.NewPrinter(language.German)

// Book is the opening-book probe the engine consults before searching.
// Accepting this narrow interface instead of a concrete *openingbook.Book
// keeps the engine testable with a stub and is how the teacher's own
// internal/search accepts an openingbook.IOpeningBook.
type Book interface {
	Probe(b *position.Board) xq.Move
}

// Engine owns one board, one transposition table and one history table
// across repeated SearchMain calls, plus the re-entrancy guard that
// rejects overlapping calls (config.Settings.Engine.RejectConcurrent).
type Engine struct {
	board *position.Board
	tt    *transpositiontable.Table
	hist  *history.Table
	book  Book
	log   *logging.Logger

	running *semaphore.Weighted

	result    xq.Move
	nodes     int64
	startTime time.Time
	timeLimit time.Duration
}

// ErrEngineBusy is returned by SearchMain when a search is already running
// and config.Settings.Engine.RejectConcurrent is true.
type ErrEngineBusy struct{}

func (ErrEngineBusy) Error() string { return "engine: search already running" }

// New builds an Engine around board, sized transposition table per
// config.Settings.Search.TranspositionMask (entries, not megabytes -
// converted below), with book as the (possibly nil) opening-book probe.
func New(board *position.Board, book Book) *Engine {
	sizeInMB := ttSizeFromMask(config.Settings.Search.TranspositionMask)
	return &Engine{
		board:   board,
		tt:      transpositiontable.New(sizeInMB),
		hist:    history.NewTable(),
		book:    book,
		log:     logging.GetEngineLog(),
		running: semaphore.NewWeighted(1),
	}
}

// ttSizeFromMask converts an entry-count mask (entries-1) to the
// megabyte size transpositiontable.New expects, rounding down to whole
// megabytes with a minimum of one megabyte.
func ttSizeFromMask(mask int) int {
	entries := int64(mask) + 1
	bytes := entries * 16
	mb := bytes / (1024 * 1024)
	if mb < 1 {
		mb = 1
	}
	return int(mb)
}

// Board exposes the engine's position for callers that need to inspect
// or mutate it directly between searches (e.g. a CLI applying a move).
func (e *Engine) Board() *position.Board { return e.board }

// SearchMain runs a book probe followed, if the book has nothing playable,
// by iterative-deepening search up to maxDepth or timeLimit - whichever
// comes first - and returns the chosen move plus diagnostics. This
// mirrors engine.rs's search_main: probe the book and play the book move
// only if, after a trial make, it produces no repetition at all
// (RepStatus(3) == 0); any repetition, drawn or perpetual, falls through
// to a full search instead.
func (e *Engine) SearchMain(maxDepth int, timeLimit time.Duration) (Result, error) {
	if config.Settings.Engine.RejectConcurrent {
		if !e.running.TryAcquire(1) {
			return Result{}, ErrEngineBusy{}
		}
		defer e.running.Release(1)
	}

	e.startTime = time.Now()
	e.timeLimit = timeLimit
	e.nodes = 0

	if bookMove := e.probeBook(); bookMove != xq.NoMove {
		return Result{BestMove: bookMove, BookMove: true, Elapsed: time.Since(e.startTime)}, nil
	}

	e.tt.Clear()
	e.hist = history.NewTable()
	e.result = xq.NoMove
	e.board.Distance = 0

	var bestValue xq.Value
	depthReached := 0
	for depth := 1; depth <= maxDepth; depth++ {
		bestValue = e.searchRoot(depth)
		depthReached = depth
		if e.timeExceeded() {
			break
		}
		if bestValue > xq.WinValue || bestValue < -xq.WinValue {
			break
		}
		if e.searchUnique(1-xq.WinValue, depth) {
			break
		}
	}

	e.log.Info(out.Sprintf("search done: move=%s value=%d depth=%d nodes=%d time=%dms",
		e.result, bestValue, depthReached, e.nodes, time.Since(e.startTime).Milliseconds()))

	return Result{
		BestMove:  e.result,
		BestValue: bestValue,
		Depth:     depthReached,
		Nodes:     e.nodes,
		Elapsed:   time.Since(e.startTime),
	}, nil
}

// probeBook asks the book for a move and, if it has one, trial-plays it
// to decide whether to actually commit to it: the move is only played
// outright when it introduces no repetition at all (rep_status(3) == 0).
// Any repetition signal - including one that would merely be a safe
// draw - defers to a full search instead, since the book has no way to
// tell a repeated position it's walking into is actually advantageous,
// exactly as search_main does.
func (e *Engine) probeBook() xq.Move {
	if e.book == nil || !config.Settings.Search.UseBook {
		return xq.NoMove
	}
	mv := e.book.Probe(e.board)
	if mv == xq.NoMove {
		return xq.NoMove
	}
	if !e.board.MakeMove(mv) {
		return xq.NoMove
	}
	defer e.board.UndoMove()

	if e.board.RepStatus(3) != 0 {
		return xq.NoMove
	}
	return mv
}

func (e *Engine) timeExceeded() bool {
	return e.timeLimit > 0 && time.Since(e.startTime) >= e.timeLimit
}

// searchRoot searches every root move at depth, PVS-style: the first
// move gets a full window, every later move a null-window research that
// re-opens to a full window only on a fail-high. Grounded on
// engine.rs::search_root, including the randomness injection and the
// draw-value collision nudge applied only to non-mate scores.
func (e *Engine) searchRoot(depth int) xq.Value {
	mp := movepicker.New(e.board, e.hist, e.board.Distance, e.result)
	vlBest := -xq.MateValue
	best := xq.NoMove
	first := true

	for {
		mv := mp.Next()
		if mv == xq.NoMove {
			break
		}
		if !e.board.MakeMove(mv) {
			continue
		}
		e.nodes++

		var vl xq.Value
		if first {
			vl = -e.searchFull(-xq.MateValue, xq.MateValue, depth-1, false)
		} else {
			vl = -e.searchFull(-vlBest-1, -vlBest, depth-1, true)
			if vl > vlBest {
				vl = -e.searchFull(-xq.MateValue, -vlBest, depth-1, true)
			}
		}
		e.board.UndoMove()

		if e.timeExceeded() {
			break
		}
		if first || vl > vlBest {
			vlBest = vl
			best = mv
		}
		first = false
	}

	if best != xq.NoMove {
		e.result = best
	}
	if vlBest > -xq.WinValue && vlBest < xq.WinValue {
		vlBest += xq.Value(randInt(xq.Randomness)) - xq.Value(randInt(xq.Randomness))
		if vlBest == e.board.DrawValue() {
			vlBest--
		}
	}
	e.setBestMove(e.result, depth)
	return vlBest
}

// searchFull is the main alpha-beta node: mate-distance and repetition
// short-circuits, a transposition-table probe, null-move pruning with a
// verification re-search when the reduced margin isn't trusted, then the
// move-picker loop with the same PVS research pattern as searchRoot.
// Grounded on engine.rs::search_full.
func (e *Engine) searchFull(alpha, beta xq.Value, depth int, notNull bool) xq.Value {
	if depth <= 0 {
		return e.searchQuiescence(alpha, beta)
	}

	mateValue := e.board.MateValue()
	if mateValue > alpha {
		if mateValue >= beta {
			return mateValue
		}
		alpha = mateValue
	}

	if status := e.board.RepStatus(1); status != 0 {
		return e.board.RepValue(status)
	}

	if e.board.Distance >= xq.LimitDepth {
		return e.board.Evaluate()
	}

	hashMove := xq.NoMove
	if entry, ok := e.tt.Probe(e.board.ZobristKey, e.board.ZobristLock, e.board.Distance); ok {
		hashMove = entry.Move
		isMate := entry.Value > xq.WinValue || entry.Value < -xq.WinValue
		usable := (int(entry.Depth) >= depth || isMate) && entry.Value != e.board.DrawValue()
		if usable {
			switch entry.Flag {
			case transpositiontable.FlagPV:
				return entry.Value
			case transpositiontable.FlagAlpha:
				if entry.Value <= alpha {
					return alpha
				}
			case transpositiontable.FlagBeta:
				if entry.Value >= beta {
					return beta
				}
			}
		}
	}

	checked := e.board.Checked()
	if notNull && !checked && e.board.NullOkay() {
		e.board.NullMove()
		vl := -e.searchFull(-beta, -beta+1, depth-1-xq.NullDepth, false)
		e.board.UndoNullMove()
		if vl >= beta {
			if e.board.NullSafe() {
				return beta
			}
			verify := e.searchFull(beta-1, beta, depth-xq.NullDepth, false)
			if verify >= beta {
				return beta
			}
		}
	}

	mp := movepicker.New(e.board, e.hist, e.board.Distance, hashMove)
	vlBest := -xq.MateValue
	best := xq.NoMove
	first := true
	flag := transpositiontable.FlagAlpha

	for {
		mv := mp.Next()
		if mv == xq.NoMove {
			break
		}
		if !e.board.MakeMove(mv) {
			continue
		}
		e.nodes++

		newDepth := depth - 1
		if checked || mp.SingleReply {
			newDepth = depth
		}

		var vl xq.Value
		if first {
			vl = -e.searchFull(-beta, -alpha, newDepth, true)
		} else {
			vl = -e.searchFull(-alpha-1, -alpha, newDepth, true)
			if vl > alpha && vl < beta {
				vl = -e.searchFull(-beta, -alpha, newDepth, true)
			}
		}
		e.board.UndoMove()
		first = false

		if vl > vlBest {
			vlBest = vl
			best = mv
			if vl > alpha {
				alpha = vl
				flag = transpositiontable.FlagPV
				if vl >= beta {
					flag = transpositiontable.FlagBeta
					break
				}
			}
		}

		if e.timeExceeded() {
			break
		}
	}

	if best == xq.NoMove {
		return e.board.MateValue()
	}

	e.tt.Put(e.board.ZobristKey, e.board.ZobristLock, best, int8(depth), vlBest, flag, e.board.Distance)
	e.setBestMove(best, depth)
	return vlBest
}

// searchQuiescence is the capture-only tail search (search_pruning in
// engine.rs). In check it searches every pseudo-legal reply; otherwise it
// stands pat first and then walks MVV-LVA-ordered captures, truncating
// the list at the same score-based cutoff the reference engine uses as
// an SEE proxy.
func (e *Engine) searchQuiescence(alpha, beta xq.Value) xq.Value {
	mateValue := e.board.MateValue()
	if mateValue > alpha {
		if mateValue >= beta {
			return mateValue
		}
		alpha = mateValue
	}

	if status := e.board.RepStatus(1); status != 0 {
		return e.board.RepValue(status)
	}

	if e.board.Distance >= xq.LimitDepth {
		return e.board.Evaluate()
	}

	checked := e.board.Checked()
	vlBest := -xq.MateValue
	var moves []xq.Move
	var scores []int

	if checked {
		moves, _ = e.board.GenerateMoves(false)
		scores = make([]int, len(moves))
		for i, mv := range moves {
			scores[i] = e.hist.ScoreOf(e.board.HistoryIndex(mv))
		}
		moveorder.Sort(moves, scores)
	} else {
		vl := e.board.Evaluate()
		if vl > vlBest {
			vlBest = vl
			if vl >= beta {
				return vl
			}
			if vl > alpha {
				alpha = vl
			}
		}
		moves, scores = e.board.GenerateMoves(true)
		moveorder.Sort(moves, scores)
		moves = truncateCaptures(moves, scores, int(e.board.SideToMove))
	}

	for _, mv := range moves {
		if !e.board.MakeMove(mv) {
			continue
		}
		e.nodes++
		vl := -e.searchQuiescence(-beta, -alpha)
		e.board.UndoMove()

		if vl > vlBest {
			vlBest = vl
			if vl > alpha {
				alpha = vl
				if vl >= beta {
					return vl
				}
			}
		}
		if e.timeExceeded() {
			break
		}
	}

	if checked && vlBest == -xq.MateValue {
		return e.board.MateValue()
	}
	return vlBest
}

// searchUnique reports whether, at depth, every alternative to the move
// already chosen as e.result fails to reach beta in a null-window
// research - i.e. the position has exactly one move worth playing and
// iterative deepening can stop early. Grounded on engine.rs::search_unique.
func (e *Engine) searchUnique(beta xq.Value, depth int) bool {
	mp := movepicker.New(e.board, e.hist, e.board.Distance, e.result)
	mp.Next() // discard the already-chosen best move

	checked := e.board.Checked()
	for {
		mv := mp.Next()
		if mv == xq.NoMove {
			break
		}
		if !e.board.MakeMove(mv) {
			continue
		}
		e.nodes++

		newDepth := depth - 1
		if checked {
			newDepth = depth
		}
		vl := -e.searchFull(-beta, 1-beta, newDepth, true)
		e.board.UndoMove()

		if vl >= beta {
			return false
		}
	}
	return true
}

// setBestMove rewards the move that just improved the search at depth:
// history gets depth^2 and the move unconditionally becomes the new
// slot-1 killer for the current ply, captures included. Grounded on
// set_best_move in engine.rs.
func (e *Engine) setBestMove(mv xq.Move, depth int) {
	if mv == xq.NoMove {
		return
	}
	e.hist.Bump(e.board.HistoryIndex(mv), depth)
	e.hist.StoreKiller(e.board.Distance, mv)
}

// truncateCaptures drops every MVV-LVA-ordered capture from the first
// index where its score falls under the reference engine's SEE-proxy
// threshold: scores below 10 are always cut, and scores below 20 are cut
// too when the destination still sits on the mover's own half of the
// board (an advanced capture is assumed more likely to be genuinely
// winning material than one still near home). moves and scores must
// already be sorted descending by score.
func truncateCaptures(moves []xq.Move, scores []int, side int) []xq.Move {
	for i, score := range scores {
		if score < 10 || (score < 20 && tables.HomeHalf(int(moves[i].Dst()), side)) {
			return moves[:i]
		}
	}
	return moves
}

// randInt returns a pseudo-random integer in [0, n), matching the
// reference engine's randf64(value)-style weighted draw used for the
// root randomness injection.
func randInt(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}
