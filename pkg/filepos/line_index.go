// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"sort"
	"strings"
)

// LineIndex maps byte offsets of a source to line and column numbers.
type LineIndex struct {
	src      string
	file     string
	newlines []int
}

func NewLineIndex(src, file string) *LineIndex {
	idx := &LineIndex{src: src, file: file}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx.newlines = append(idx.newlines, i)
		}
	}
	return idx
}

// LineCol returns the 0 based line and column of offset.
// Offsets past the end of the source are clamped to its length.
func (idx *LineIndex) LineCol(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(idx.src) {
		offset = len(idx.src)
	}
	line := sort.SearchInts(idx.newlines, offset)
	if line == 0 {
		return 0, offset
	}
	return line, offset - idx.newlines[line-1] - 1
}

// LineStart returns the offset of the first byte of the 0 based line.
func (idx *LineIndex) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line > len(idx.newlines) {
		return len(idx.src)
	}
	return idx.newlines[line-1] + 1
}

// Line returns the text of the 0 based line without its line break.
func (idx *LineIndex) Line(line int) string {
	start := idx.LineStart(line)
	end := len(idx.src)
	if line < len(idx.newlines) {
		end = idx.newlines[line]
	}
	if start > end {
		return ""
	}
	return strings.TrimSuffix(idx.src[start:end], "\r")
}

// Position returns a known Position for offset, with the source line attached.
func (idx *LineIndex) Position(offset int) *Position {
	line, col := idx.LineCol(offset)
	if offset < 0 {
		offset = 0
	}
	if offset > len(idx.src) {
		offset = len(idx.src)
	}
	pos := NewPosition(offset, line+1, col+1)
	pos.SetFile(idx.file)
	pos.SetLine(idx.Line(line))
	return pos
}

// Slice returns the source between two offsets.
func (idx *LineIndex) Slice(start, end int) string {
	return idx.src[start:end]
}

func (idx *LineIndex) File() string { return idx.file }
