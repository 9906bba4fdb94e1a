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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi-go/internal/config"
	"github.com/frankkopp/xiangqi-go/internal/engine"
	"github.com/frankkopp/xiangqi-go/internal/logging"
	"github.com/frankkopp/xiangqi-go/internal/openingbook"
	"github.com/frankkopp/xiangqi-go/internal/position"
	"github.com/frankkopp/xiangqi-go/internal/util"
	"github.com/frankkopp/xiangqi-go/internal/xq"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFEN, "fen of the position to search from")
	depth := flag.Int("depth", 8, "maximum search depth per move")
	movetimeMs := flag.Int("movetime", 0, "search time per move in milliseconds\n(0 uses the config file's engine.DefaultTimeMs)")
	bookPath := flag.String("bookpath", "", "path to an opening book file\n(empty disables the opening book)")
	plies := flag.Int("plies", 0, "number of plies to self-play before stopping\n(0 plays until the game ends)")
	perftDepth := flag.Int("perft", 0, "runs a move-generation node count to the given depth on -fen and exits")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	memProfile := flag.Bool("memprofile", false, "write a memory profile of the run to ./mem.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.Get("main")

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	b, err := position.NewBoardFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad fen:", err)
		os.Exit(1)
	}

	var book engine.Book
	if *bookPath != "" {
		bk := openingbook.NewBook()
		format := openingbook.Text
		if config.Settings.Search.BookFormat == "binary" {
			format = openingbook.Binary
		}
		if err := bk.Initialize(*bookPath, format, true, false); err != nil {
			log.Errorf("could not load opening book %q: %v", *bookPath, err)
		} else {
			book = bk
		}
	}

	eng := engine.New(b, book)

	timeLimit := time.Duration(config.Settings.Engine.DefaultTimeMs) * time.Millisecond
	if *movetimeMs > 0 {
		timeLimit = time.Duration(*movetimeMs) * time.Millisecond
	}

	playGame(eng, *depth, timeLimit, *plies, log)
}

// playGame loops search_main -> ICCS print -> apply move, the way the
// teacher's main drives the UCI handler's search loop, until the winner
// oracle reports the game has ended or maxPlies is reached (0 meaning no
// cap).
func playGame(eng *engine.Engine, depth int, timeLimit time.Duration, maxPlies int, log *logging.Logger) {
	for ply := 1; maxPlies == 0 || ply <= maxPlies; ply++ {
		if winner := eng.DetermineWinner(); winner != engine.WinnerNone {
			out.Printf("game over: %s\n", winner)
			return
		}

		result, err := eng.SearchMain(depth, timeLimit)
		if err != nil {
			log.Errorf("search_main failed: %v", err)
			return
		}
		if result.BestMove == xq.NoMove {
			out.Printf("no legal move at ply %d\n", ply)
			return
		}

		nps := util.Nps(uint64(result.Nodes), result.Elapsed)
		out.Printf("%3d. %-6s value=%-6d depth=%-2d nodes=%-8d nps=%-8d time=%5dms book=%v\n",
			ply, result.BestMove.ICCS(), result.BestValue, result.Depth, result.Nodes, nps,
			result.Elapsed.Milliseconds(), result.BookMove)

		eng.Board().MakeMove(result.BestMove)
	}
	out.Printf("stopped after %d plies: %s\n", maxPlies, eng.Board().String())
}

func runPerft(fen string, depth int) {
	b, err := position.NewBoardFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad fen:", err)
		os.Exit(1)
	}

	out.Printf("Performing Perft for depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)

	start := time.Now()
	nodes := b.Perft(depth)
	elapsed := time.Since(start)

	out.Printf("Nodes: %d\n", nodes)
	out.Printf("Time : %s\n", elapsed)
	out.Printf("NPS  : %d\n", util.Nps(nodes, elapsed))
}

func printVersionInfo() {
	out.Println("xiangqi-go")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
