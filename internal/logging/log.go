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

// Package logging is a helper for "github.com/op/go-logging" that reduces
// the lines of code within each file to one line. It merges the teacher's
// two logging helpers - logging/log.go's named, level-configurable
// sub-loggers and franky_logging/log.go's terse single GetLog(name) - into
// one family: a generic Get(name) plus the four named sub-loggers the
// engine, search, opening book and test suite each reach for.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/xiangqi-go/internal/config"
)

// Logger is a re-export of go-logging's Logger so callers never need to
// import op/go-logging directly.
type Logger = golog.Logger

var (
	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)

	engineLog *golog.Logger
	searchLog *golog.Logger
	bookLog   *golog.Logger
	testLog   *golog.Logger
)

func init() {
	engineLog = golog.MustGetLogger("engine")
	searchLog = golog.MustGetLogger("search")
	bookLog = golog.MustGetLogger("book")
	testLog = golog.MustGetLogger("test")
}

func stdoutBackend(level golog.Level) golog.Backend {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// fileBackend opens path for append and wraps it the same way as
// stdoutBackend. A failure to open the file is logged to stderr and nil is
// returned so callers fall back to stdout-only.
func fileBackend(path string, level golog.Level) golog.Backend {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("logging: could not open log file", path, err)
		return nil
	}
	backend := golog.NewLogBackend(f, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// Get returns an ad-hoc named logger backed only by stdout at the
// configured standard level, for packages that don't own one of the four
// named sub-loggers below.
func Get(name string) *golog.Logger {
	l := golog.MustGetLogger(name)
	l.SetBackend(stdoutBackend(golog.Level(config.LogLevel)))
	return l
}

// GetEngineLog returns the shared engine-lifecycle logger.
func GetEngineLog() *golog.Logger {
	engineLog.SetBackend(stdoutBackend(golog.Level(config.LogLevel)))
	return engineLog
}

// GetSearchLog returns the shared search logger, also mirrored to
// config.Settings.Log.SearchLogPath when set.
func GetSearchLog() *golog.Logger {
	level := golog.Level(config.SearchLogLevel)
	primary := stdoutBackend(level)
	if fb := fileBackend(config.Settings.Log.SearchLogPath, level); fb != nil {
		searchLog.SetBackend(golog.SetBackend(primary, fb))
	} else {
		searchLog.SetBackend(primary)
	}
	return searchLog
}

// GetBookLog returns the shared opening-book logger.
func GetBookLog() *golog.Logger {
	bookLog.SetBackend(stdoutBackend(golog.Level(config.LogLevel)))
	return bookLog
}

// GetTestLog returns the shared test-suite logger, leveled independently
// via config.TestLogLevel.
func GetTestLog() *golog.Logger {
	level := golog.Level(config.TestLogLevel)
	primary := stdoutBackend(level)
	if fb := fileBackend(config.Settings.Log.TestLogPath, level); fb != nil {
		testLog.SetBackend(golog.SetBackend(primary, fb))
	} else {
		testLog.SetBackend(primary)
	}
	return testLog
}
