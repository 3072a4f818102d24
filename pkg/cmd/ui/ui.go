// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	Warnf(str string, args ...interface{})
	DebugWriter() io.Writer

	// Stdout is where reports are written.
	Stdout() io.Writer
	// Colored reports whether output may contain ANSI styling.
	Colored() bool
}
