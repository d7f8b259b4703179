// Copyright 2026 The zram-generator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides the logger set used by zram-generator. Every logger
// is a standard library log.Logger that additionally knows how to render
// errors wrapped with errwrap as an indented chain of causes.
package log

import (
	"bytes"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/errwrap"
)

// Logger is a log.Logger with helpers for wrapped errors.
type Logger struct {
	*log.Logger
	debug bool
}

// New creates a new Logger with no log flags set.
func New(out io.Writer, prefix string, debug bool) *Logger {
	l := &Logger{
		debug:  debug,
		Logger: log.New(out, prefix, 0),
	}
	l.SetFlags(0)
	return l
}

// NewLogSet returns a set of Loggers for commonly used output streams:
// errors, diagnostics and stdout. The error and stdout streams should
// generally never be suppressed. diagnostic can be suppressed by setting
// the output to ioutil.Discard. If an output destination is not needed,
// one can simply discard it by assigning it to '_'.
func NewLogSet(prefix string, debug bool) (stderr, diagnostic, stdout *Logger) {
	stderr = New(os.Stderr, prefix, debug)
	diagnostic = New(os.Stderr, prefix, debug)
	// Debug not used for stdout.
	stdout = New(os.Stdout, prefix, false)

	return stderr, diagnostic, stdout
}

// NewDiscard returns a Logger that drops everything written to it.
func NewDiscard() *Logger {
	return New(ioutil.Discard, "", false)
}

// SetDebug sets the debug flag to the value of b
func (l *Logger) SetDebug(b bool) { l.debug = b }

// SetFlags is a wrapper around log.SetFlags that adds and removes ": " to
// and from a prefix. This is needed because ": " is only added by golang's
// log package if either of the Lshortfile or Llongfile flags are set.
func (l *Logger) SetFlags(flag int) {
	l.Logger.SetFlags(flag)

	// Only proceed if we've actually got a prefix
	if l.Prefix() == "" {
		return
	}

	const clnSpc = ": "
	if flag&(log.Lshortfile|log.Llongfile) != 0 {
		l.SetPrefix(strings.TrimSuffix(l.Prefix(), clnSpc))
	} else {
		l.SetPrefix(strings.TrimSuffix(l.Prefix(), clnSpc) + clnSpc)
	}
}

// formatErr renders e after msg. Without debug the chain is flattened on
// one line and stops at the first error that unwraps to a cause, since its
// own message already includes that cause. With debug every link of the
// chain is printed on its own line.
func (l *Logger) formatErr(e error, msg string) string {
	// Get a list of accumulated errors
	var errors []error
	errwrap.Walk(e, func(err error) {
		errors = append(errors, err)
	})

	var buf bytes.Buffer
	buf.WriteString(msg)

	if !l.debug {
		for _, err := range errors {
			buf.WriteString(": ")
			buf.WriteString(err.Error())
			if _, ok := err.(interface{ Unwrap() error }); ok {
				break
			}
		}
		return buf.String()
	}

	for i, err := range errors {
		buf.WriteString("\n")
		buf.WriteString(strings.Repeat("  ", i+1))
		buf.WriteString("└─")
		buf.WriteString(err.Error())
	}

	return buf.String()
}

// PrintE prints the msg and its error message(s).
func (l *Logger) PrintE(msg string, e error) {
	l.Print(l.formatErr(e, msg))
}

// FatalE prints a string and error then calls os.Exit(1).
func (l *Logger) FatalE(msg string, e error) {
	l.Fatal(l.formatErr(e, msg))
}
