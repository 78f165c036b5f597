// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ensurePathAbsoluteOrRelativeTo returns filename unchanged if it is already
// absolute, otherwise joins it onto datadir.
func ensurePathAbsoluteOrRelativeTo(datadir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}

func openLogFile(datadir string, filename string) *os.File {
	path := ensurePathAbsoluteOrRelativeTo(datadir, filename)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("error opening log file '%s': %v", filename, err))
	}
	return file
}

// Writer resolves the destination for a log file argument the way the CLI
// flags in cmd/gasmeter do: an empty/"-" path means stdout, anything else
// is opened relative to datadir.
func Writer(datadir, logFile string) io.Writer {
	if logFile == "" || logFile == "-" {
		return os.Stdout
	}
	return openLogFile(datadir, logFile)
}

// mlogWriter is where every mlog Logger created by NewLogger sends its
// lines, until a caller points it elsewhere with SetMLogWriter.
var mlogWriter io.Writer = os.Stdout

// SetMLogWriter sets the destination every component Logger created by a
// later NewLogger call writes to. cmd/gasmeter calls this with the result
// of Writer(datadir, logfile) before activating any mlog components, so
// audit lines land in the same file an operator pointed --logfile at.
func SetMLogWriter(w io.Writer) {
	mlogWriter = w
}

// Logger is the destination a registered mlog component sends its
// formatted lines to.
type Logger struct {
	component string
	w         io.Writer
}

// NewLogger returns a Logger for component, writing to the current
// mlogWriter.
func NewLogger(component string) *Logger {
	return &Logger{component: component, w: mlogWriter}
}

// Sendf writes one line to l's destination. calldepth is accepted for
// parity with the stdlib log.Output signature mlog callers expect but
// isn't used: lines are pre-formatted MLogT strings, not call-site traces.
func (l *Logger) Sendf(calldepth int, format string, v ...interface{}) {
	line := format
	if len(v) > 0 {
		line = fmt.Sprintf(format, v...)
	}
	fmt.Fprintln(l.w, line)
}
