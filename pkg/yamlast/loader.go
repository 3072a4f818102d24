// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"iter"

	"carvel.dev/yamlast/pkg/filepos"
	"github.com/sourcegraph/conc/pool"
)

const extraDocumentsMsg = "expected a single document in the stream, but found more"

// Load parses the first document of src. Following documents are ignored
// and reported as an error on the returned document, whose range then
// covers all of src.
//
// Recovery errors are only recorded on the Document. The returned error is
// non-nil only when parsing had to stop early (see ParseError.Fatal); the
// partial Document is returned with it.
func (p *Parser) Load(src string) (*Document, error) {
	index := filepos.NewLineIndex(src, p.opts.AssociatedName)
	segs := splitSegments(src)

	doc := p.parseSegment(src, segs[0], index)
	if len(segs) > 1 {
		doc.end = len(src)
		doc.Errors = append(doc.Errors, &ParseError{
			Message:  extraDocumentsMsg,
			Offset:   segs[1].start,
			Position: index.Position(segs[1].start),
		})
	}

	if fatal := doc.FatalError(); fatal != nil {
		return doc, fatal
	}
	return doc, nil
}

// SafeLoad is Load for callers that must always get a Document: fatal
// errors are only recorded on it.
func (p *Parser) SafeLoad(src string) *Document {
	doc, _ := p.Load(src)
	return doc
}

// Documents returns the documents of the stream src in source order. Each
// document is parsed when the sequence reaches it; ranging over the sequence
// again parses src again.
func (p *Parser) Documents(src string) iter.Seq[*Document] {
	return func(yield func(*Document) bool) {
		index := filepos.NewLineIndex(src, p.opts.AssociatedName)
		for _, seg := range splitSegments(src) {
			if !yield(p.parseSegment(src, seg, index)) {
				return
			}
		}
	}
}

// LoadAll calls onDocument for every document of src in source order.
func (p *Parser) LoadAll(src string, onDocument func(*Document)) {
	for doc := range p.Documents(src) {
		onDocument(doc)
	}
}

// LoadAllParallel parses the documents of src with up to workers goroutines
// and returns them in source order.
func (p *Parser) LoadAllParallel(src string, workers int) []*Document {
	index := filepos.NewLineIndex(src, p.opts.AssociatedName)
	segs := splitSegments(src)
	docs := make([]*Document, len(segs))

	wp := pool.New().WithMaxGoroutines(max(workers, 1))
	for i, seg := range segs {
		wp.Go(func() {
			docs[i] = p.parseSegment(src, seg, index)
		})
	}
	wp.Wait()

	return docs
}

var defaultParser = NewParser(ParserOpts{})

// Load parses the first document of src with default options. See Parser.Load.
func Load(src string) (*Document, error) { return defaultParser.Load(src) }

// SafeLoad parses the first document of src with default options and never fails.
func SafeLoad(src string) *Document { return defaultParser.SafeLoad(src) }

// LoadAll calls onDocument for every document of src, in source order.
func LoadAll(src string, onDocument func(*Document)) { defaultParser.LoadAll(src, onDocument) }

// Documents returns a lazy sequence of the documents of src.
func Documents(src string) iter.Seq[*Document] { return defaultParser.Documents(src) }

// LoadAllParallel parses the documents of src concurrently.
func LoadAllParallel(src string, workers int) []*Document {
	return defaultParser.LoadAllParallel(src, workers)
}
