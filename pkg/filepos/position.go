// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	offset  int
	lineNum int // 1 based
	column  int // 1 based
	file    string
	line    string
	known   bool
}

// NewPosition returns a known Position. lineNum and column are 1 based.
func NewPosition(offset, lineNum, column int) *Position {
	if lineNum <= 0 || column <= 0 {
		panic("Lines and columns are 1 based")
	}
	if offset < 0 {
		panic("Offsets are 0 based")
	}
	return &Position{offset: offset, lineNum: lineNum, column: column, known: true}
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) SetLine(line string) { p.line = line }

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) Offset() int {
	p.mustBeKnown()
	return p.offset
}

func (p *Position) LineNum() int {
	p.mustBeKnown()
	return p.lineNum
}

func (p *Position) Column() int {
	p.mustBeKnown()
	return p.column
}

func (p *Position) GetLine() string { return p.line }

func (p *Position) GetFile() string { return p.file }

func (p *Position) AsCompactString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%s%d:%d", p.filePrefix(), p.lineNum, p.column)
	}
	return p.filePrefix() + "?"
}

func (p *Position) filePrefix() string {
	if len(p.file) > 0 {
		return p.file + ":"
	}
	return ""
}

func (p *Position) mustBeKnown() {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
}
