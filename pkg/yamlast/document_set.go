// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"slices"
)

// DocumentSet holds every document of a stream.
type DocumentSet struct {
	Items  []*Document
	Source string
}

type DocSetOpts struct {
	// AssociatedName is typically a file name where data came from
	AssociatedName string
	MaxDepth       int
	IncludeTag     string
	// Parallel is the number of goroutines parsing documents. Values below 2
	// parse sequentially.
	Parallel int
}

func NewDocumentSetFromBytes(data []byte, opts DocSetOpts) *DocumentSet {
	parser := NewParser(ParserOpts{
		AssociatedName: opts.AssociatedName,
		MaxDepth:       opts.MaxDepth,
		IncludeTag:     opts.IncludeTag,
	})

	src := string(data)
	docSet := &DocumentSet{Source: src}
	if opts.Parallel > 1 {
		docSet.Items = parser.LoadAllParallel(src, opts.Parallel)
	} else {
		docSet.Items = slices.Collect(parser.Documents(src))
	}
	return docSet
}

// AsSourceBytes returns bytes used to make the DocumentSet.
func (d *DocumentSet) AsSourceBytes() []byte {
	return []byte(d.Source)
}

// Errors returns the errors of all documents in source order.
func (d *DocumentSet) Errors() []*ParseError {
	var errs []*ParseError
	for _, doc := range d.Items {
		errs = append(errs, doc.Errors...)
	}
	return errs
}

// HasErrors reports whether any document has an error that is not a warning.
func (d *DocumentSet) HasErrors() bool {
	return slices.ContainsFunc(d.Items, (*Document).HasErrors)
}

// AsInterfaces converts the root of every non-empty document with AsInterface.
func (d *DocumentSet) AsInterfaces() ([]interface{}, error) {
	var result []interface{}
	for _, doc := range d.Items {
		if doc.Root == nil {
			continue
		}
		val, err := AsInterface(doc.Root)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}
