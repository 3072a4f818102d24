// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"fmt"
	"strings"

	"carvel.dev/yamlast/pkg/filepos"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#282A36"))
)

// Renderer formats parse errors of one source with the surrounding lines
// and a caret under the offending column.
type Renderer struct {
	index   *filepos.LineIndex
	colored bool

	// ContextLines is the number of lines shown before the error line.
	ContextLines int
}

func NewRenderer(src, file string, colored bool) *Renderer {
	return &Renderer{index: filepos.NewLineIndex(src, file), colored: colored, ContextLines: 1}
}

func (r *Renderer) style(style lipgloss.Style, text string) string {
	if r.colored {
		return style.Render(text)
	}
	return text
}

// Format renders err as "file:line:col: error: message" followed by source context.
func (r *Renderer) Format(err *yamlast.ParseError) string {
	var output strings.Builder

	pos := r.index.Position(err.Offset)
	output.WriteString(r.style(filePathStyle, pos.AsCompactString()+":"))
	output.WriteString(" ")

	if err.Warning {
		output.WriteString(r.style(warningStyle, "warning:"))
	} else {
		output.WriteString(r.style(errorStyle, "error:"))
	}
	output.WriteString(" ")
	output.WriteString(err.Message)
	output.WriteString("\n")

	output.WriteString(r.context(pos.LineNum()-1, pos.Column()-1))
	return output.String()
}

// FormatDuplicateKey renders a duplicated key as a warning pointing at the
// second definition.
func (r *Renderer) FormatDuplicateKey(dup yamlast.DuplicateKey) string {
	return r.Format(&yamlast.ParseError{
		Message: fmt.Sprintf("duplicated mapping key %q (first defined at %s)",
			dup.Key, r.index.Position(dup.First.StartPosition()).AsCompactString()),
		Offset:  dup.Duplicate.StartPosition(),
		Warning: true,
	})
}

func (r *Renderer) context(line, col int) string {
	var output strings.Builder

	first := max(line-r.ContextLines, 0)
	width := len(fmt.Sprintf("%d", line+1))

	for l := first; l <= line; l++ {
		text := r.index.Line(l)
		output.WriteString(r.style(lineNumberStyle, fmt.Sprintf("%*d", width, l+1)))
		output.WriteString(" | ")

		if l == line && col < len(text) {
			output.WriteString(text[:col])
			output.WriteString(r.style(highlightStyle, text[col:col+1]))
			output.WriteString(text[col+1:])
		} else {
			output.WriteString(text)
		}
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", width+3+col))
	output.WriteString(r.style(errorStyle, "^"))
	output.WriteString("\n")
	return output.String()
}
