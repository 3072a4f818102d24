// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"io"
	"strings"
)

type writer struct {
	writer    io.Writer
	lastChunk writerChunk
}

type writerChunk struct {
	Content        string
	Indent         string
	AllowsInlining bool
	InliningSpacer string
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

// AddContent writes chunk on its own line, or right after the previous
// chunk if that one allows inlining.
func (w *writer) AddContent(chunk writerChunk) {
	defer func() {
		w.lastChunk = chunk
	}()

	if w.lastChunk.AllowsInlining {
		io.WriteString(w.writer, w.lastChunk.InliningSpacer)
	} else {
		io.WriteString(w.writer, chunk.Indent)
	}

	io.WriteString(w.writer, w.indentMultiline(chunk))

	if !chunk.AllowsInlining {
		io.WriteString(w.writer, "\n")
	}
}

// indentMultiline indents continuation lines to the level enclosing the
// chunk; they carry their own relative indentation. Empty lines stay empty.
func (w *writer) indentMultiline(chunk writerChunk) string {
	if !strings.Contains(chunk.Content, "\n") {
		return chunk.Content
	}

	base := strings.TrimSuffix(chunk.Indent, indentLvl)

	result := []string{}
	for i, piece := range strings.Split(chunk.Content, "\n") {
		if i != 0 && piece != "" {
			piece = base + piece
		}
		result = append(result, piece)
	}
	return strings.Join(result, "\n")
}
