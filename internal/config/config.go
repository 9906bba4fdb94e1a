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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a TOML config file, or set by
// command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file, relative to the working directory.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overwritten by cmd line options or the config file.
	LogLevel = 4

	// SearchLogLevel is the search log level, overwritten by cmd line options or the config file.
	SearchLogLevel = 4

	// TestLogLevel is the test-suite log level.
	TestLogLevel = 4

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Engine engineConfiguration
}

// Setup reads the configuration file and sets the search, engine and
// logging configuration from it, falling back to defaults for anything
// missing or for a missing file entirely.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}

	setupLogLvl()
	setupSearch()
	setupEngine()
	initialized = true
}

// String dumps the current configuration via reflection, for diagnostics.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	dumpStruct(&c, &settings.Search)
	c.WriteString("\nEngine Config:\n")
	dumpStruct(&c, &settings.Engine)
	return c.String()
}

func dumpStruct(c *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		fmt.Fprintf(c, "%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
