// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"fmt"
	"sort"
	"strings"

	"carvel.dev/yamlast/pkg/filepos"
	"carvel.dev/yamlast/pkg/yamlast/internal/scanner"
)

type Parser struct {
	opts ParserOpts
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts.withDefaults()}
}

// parseSegment parses one document segment of src. index must cover all of src.
func (p *Parser) parseSegment(src string, seg segment, index *filepos.LineIndex) *Document {
	dp := &docParser{
		src:        src,
		opts:       p.opts,
		seg:        seg,
		anchors:    map[string]Node{},
		terminator: -1,
	}
	dp.sc = scanner.New(src, seg.start, seg.end, func(offset int, msg string, fatal bool) {
		dp.report(offset, msg).Fatal = fatal
		if fatal {
			dp.aborted = true
		}
	})

	doc := &Document{start: seg.start, end: seg.end, index: index}
	doc.Root = dp.parseDocument()
	doc.Directives = dp.directives
	doc.Errors = dp.errs

	sort.SliceStable(doc.Errors, func(i, j int) bool { return doc.Errors[i].Offset < doc.Errors[j].Offset })
	for _, err := range doc.Errors {
		err.Position = index.Position(err.Offset)
	}
	return doc
}

type nodeContext int

const (
	documentContext nodeContext = iota
	mappingValueContext
	sequenceItemContext
)

// docParser builds the tree of a single document segment.
type docParser struct {
	src  string
	opts ParserOpts
	seg  segment
	sc   *scanner.Scanner

	errs       []*ParseError
	directives []*Directive
	anchors    map[string]Node
	depth      int
	aborted    bool

	// terminator is the offset of the marker closing the document, or -1
	// when the document runs to the end of the source.
	terminator int
}

// report records an error. Once the document was aborted, errors caused by
// the skipped input are dropped.
func (p *docParser) report(offset int, msg string) *ParseError {
	err := &ParseError{Message: msg, Offset: offset}
	if !p.aborted {
		p.errs = append(p.errs, err)
	}
	return err
}

func (p *docParser) reportOn(n Node, offset int, msg string) *ParseError {
	err := p.report(offset, msg)
	if b := base(n); b != nil && !p.aborted {
		b.addError(err)
	}
	return err
}

func (p *docParser) warn(offset int, msg string) {
	p.report(offset, msg).Warning = true
}

// abort records a fatal error and skips the rest of the document.
func (p *docParser) abort(offset int, msg string) {
	p.report(offset, msg).Fatal = true
	p.aborted = true
	p.sc.Stop()
}

func atEnd(tok scanner.Token) bool {
	return tok.Kind == scanner.EOF || tok.Kind == scanner.DocStart || tok.Kind == scanner.DocEnd
}

func (p *docParser) parseDocument() Node {
	p.parseDirectives()

	if tok := p.sc.Peek(); tok.Kind == scanner.DocStart {
		p.sc.Next()
	} else if len(p.directives) > 0 {
		p.report(tok.Start, "directives end mark is expected")
	}

	var root Node
	if !atEnd(p.sc.Peek()) {
		root = p.parseBlockNode(-1, documentContext, -1)
	}

	for {
		tok := p.sc.Peek()
		if tok.Kind == scanner.EOF || tok.Kind == scanner.DocEnd {
			break
		}
		if tok.Kind == scanner.DocStart {
			p.report(tok.Start, "unexpected document start marker")
			p.sc.Next()
			continue
		}
		p.report(tok.Start, "end of the stream or a document separator is expected")
		p.recoverRoot(root)
	}

	if tok := p.sc.Peek(); tok.Kind == scanner.DocEnd {
		p.terminator = tok.Start
		for p.sc.Peek().Kind == scanner.DocEnd {
			p.sc.Next()
		}
	} else if p.seg.end < len(p.src) {
		// closed by the "---" of the next document
		p.terminator = p.seg.end
	}

	if root != nil {
		settle(p.src, root, p.rootEnd(root))
	}
	return root
}

// recoverRoot skips the lines the root node could not take and resumes
// parsing into the root collection at the next line starting at its column.
func (p *docParser) recoverRoot(root Node) {
	indent := -1
	if root != nil {
		indent = p.column(root.StartPosition())
	}
	for {
		p.skipBlock(indent)
		tok := p.sc.Peek()
		if atEnd(tok) || !tok.FirstOnLine {
			return
		}

		switch typed := root.(type) {
		case *Sequence:
			if !typed.flow && len(typed.entryStarts) > 0 && tok.Kind == scanner.SeqEntry && tok.Column == p.column(typed.entryStarts[0]) {
				p.parseSequenceEntries(typed, tok.Column)
				return
			}
		case *Map:
			if !typed.flow && len(typed.Mappings) > 0 && tok.Kind != scanner.SeqEntry && tok.Column == p.column(typed.Mappings[0].start) {
				p.parseMapEntries(typed, tok.Column, properties{})
				return
			}
		}
	}
}

// column returns the column of offset within its line.
func (p *docParser) column(offset int) int {
	return offset - (strings.LastIndexByte(p.src[:offset], '\n') + 1)
}

func (p *docParser) rootEnd(root Node) int {
	if p.terminator >= 0 {
		return gapEnd(p.src, root.EndPosition(), p.terminator)
	}
	end := p.seg.end
	if end > p.seg.start && p.src[end-1] == '\n' {
		end--
		if end > p.seg.start && p.src[end-1] == '\r' {
			end--
		}
	}
	return max(end, root.EndPosition())
}

// skipBlock drops the current line and all following lines indented deeper than indent.
func (p *docParser) skipBlock(indent int) {
	first := p.sc.Next()
	for {
		tok := p.sc.Peek()
		if atEnd(tok) {
			return
		}
		if tok.FirstOnLine && tok.Line != first.Line && tok.LineIndent <= indent {
			return
		}
		p.sc.Next()
	}
}

// skipLine drops the current token and the rest of its line.
func (p *docParser) skipLine() {
	p.sc.Next()
	for {
		tok := p.sc.Peek()
		if tok.Kind == scanner.EOF || tok.FirstOnLine {
			return
		}
		p.sc.Next()
	}
}

// unexpected records an error for a token that can not start or continue a node.
func (p *docParser) unexpected(tok scanner.Token, where string) {
	switch tok.Kind {
	case scanner.Invalid:
		// already reported by the scanner
	case scanner.Directive:
		p.report(tok.Start, "directives must precede the document start marker")
	default:
		p.report(tok.Start, fmt.Sprintf("unexpected %s %s", tok.Kind, where))
	}
}
