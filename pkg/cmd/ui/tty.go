// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type TTY struct {
	debug   bool
	colored bool
	stdout  io.Writer
	stderr  io.Writer
}

var _ UI = TTY{}

// NewTTY writes to the process' stdout and stderr. Output is styled only
// when stdout is a terminal and NO_COLOR is not set.
func NewTTY(debug bool) TTY {
	fd := os.Stdout.Fd()
	colored := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("NO_COLOR") == ""
	return TTY{debug, colored, os.Stdout, os.Stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprintf(t.stderr, str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.stderr
	}
	return noopWriter{}
}

func (t TTY) Stdout() io.Writer { return t.stdout }

func (t TTY) Colored() bool { return t.colored }

type noopWriter struct{}

var _ io.Writer = noopWriter{}

func (w noopWriter) Write(data []byte) (int, error) { return len(data), nil }

// NewCustomWriterTTY never styles its output.
// Used for testing whether TTY writes correct output to stdout/stderr
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, false, stdout, stderr}
}
