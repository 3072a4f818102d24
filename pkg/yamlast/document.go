// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import "carvel.dev/yamlast/pkg/filepos"

// Document is one document of a YAML stream. Its range covers the whole
// segment of the source it was parsed from, including document markers,
// comments and trailing whitespace.
type Document struct {
	// Root is nil for a document without content.
	Root Node
	// Errors holds every problem found in the document, ordered by offset.
	Errors     []*ParseError
	Directives []*Directive

	start int
	end   int
	index *filepos.LineIndex
}

// Directive is a "%NAME param..." line preceding a document.
type Directive struct {
	Name   string
	Params []string
	Start  int
	End    int
}

func (d *Document) StartPosition() int { return d.start }
func (d *Document) EndPosition() int   { return d.end }

// Map returns the root of the document if it is a Map.
func (d *Document) Map() *Map {
	if m, ok := d.Root.(*Map); ok {
		return m
	}
	return nil
}

// HasErrors reports whether any error other than a warning was recorded.
func (d *Document) HasErrors() bool {
	for _, err := range d.Errors {
		if !err.Warning {
			return true
		}
	}
	return false
}

// FatalError returns the error that stopped parsing of the document, if any.
func (d *Document) FatalError() *ParseError {
	for _, err := range d.Errors {
		if err.Fatal {
			return err
		}
	}
	return nil
}

// Position converts an offset of the source into a line/column Position.
func (d *Document) Position(offset int) *filepos.Position {
	if d.index == nil {
		return filepos.NewUnknownPosition()
	}
	return d.index.Position(offset)
}

// Text returns the source segment the document was parsed from.
func (d *Document) Text() string {
	if d.index == nil {
		return ""
	}
	return d.index.Slice(d.start, d.end)
}
