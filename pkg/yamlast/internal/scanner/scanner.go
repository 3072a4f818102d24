// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"fmt"
	"strings"
)

// ReportFunc receives problems found while scanning.
// Fatal problems leave the scanner at the end of its segment.
type ReportFunc func(offset int, msg string, fatal bool)

// Scanner produces tokens for one document segment of a source.
// It never goes back past a token returned by Next.
type Scanner struct {
	src    string
	pos    int
	end    int
	report ReportFunc

	line         int
	lineStart    int
	lineIndent   int
	lineHasToken bool
	tabLine      int
	sawComment   bool
	flowLevel    int

	peeked *Token
}

const byteOrderMark = "\ufeff"

// New returns a Scanner over src[start:end]. A byte order mark at start is skipped.
func New(src string, start, end int, report ReportFunc) *Scanner {
	if report == nil {
		report = func(int, string, bool) {}
	}
	if strings.HasPrefix(src[start:end], byteOrderMark) {
		start += len(byteOrderMark)
	}
	return &Scanner{
		src:       src,
		pos:       start,
		end:       end,
		report:    report,
		lineStart: start,
		tabLine:   -1,
	}
}

func (s *Scanner) Peek() Token {
	if s.peeked == nil {
		tok := s.scan()
		s.peeked = &tok
	}
	return *s.peeked
}

func (s *Scanner) Next() Token {
	tok := s.Peek()
	s.peeked = nil
	return tok
}

// Stop makes every following token EOF.
func (s *Scanner) Stop() {
	s.pos = s.end
	s.peeked = nil
}

func (s *Scanner) at(i int) byte {
	if i < s.end {
		return s.src[i]
	}
	return 0
}

func (s *Scanner) isBlankZ(i int) bool {
	switch s.at(i) {
	case ' ', '\t', '\r', '\n', 0:
		return true
	}
	return false
}

func isFlowIndicator(c byte) bool {
	return c == ',' || c == '[' || c == ']' || c == '{' || c == '}'
}

func (s *Scanner) newLine(breakAt int) {
	s.line++
	s.lineStart = breakAt + 1
	s.lineHasToken = false
}

func (s *Scanner) skipSpace() {
	for s.pos < s.end {
		switch c := s.src[s.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			s.pos++
		case c == '\n':
			s.newLine(s.pos)
			s.pos++
		case c == '#' && (s.pos == s.lineStart || s.src[s.pos-1] == ' ' || s.src[s.pos-1] == '\t'):
			for s.pos < s.end && s.src[s.pos] != '\n' {
				s.pos++
			}
			s.sawComment = true
		default:
			return
		}
	}
}

func (s *Scanner) measureIndent() int {
	for i := s.lineStart; i < s.pos; i++ {
		if s.src[i] == '\t' && s.flowLevel == 0 && s.tabLine != s.line && s.pos < s.end {
			s.tabLine = s.line
			s.report(i, "tab characters must not be used in indentation", false)
		}
	}
	return s.pos - s.lineStart
}

func (s *Scanner) isMarker(marker string) bool {
	return strings.HasPrefix(s.src[s.pos:s.end], marker) && s.isBlankZ(s.pos+len(marker))
}

func (s *Scanner) scan() Token {
	s.skipSpace()

	tok := Token{Start: s.pos, AfterComment: s.sawComment}
	s.sawComment = false
	if !s.lineHasToken {
		tok.FirstOnLine = true
		s.lineIndent = s.measureIndent()
	}
	tok.Line = s.line
	tok.Column = s.pos - s.lineStart
	tok.LineIndent = s.lineIndent

	if s.pos >= s.end {
		tok.Kind = EOF
		tok.End = s.pos
		tok.FirstOnLine = true
		return tok
	}
	s.lineHasToken = true

	c := s.src[s.pos]

	if tok.Column == 0 && s.flowLevel == 0 {
		switch {
		case s.isMarker("---"):
			return s.single(tok, DocStart, 3)
		case s.isMarker("..."):
			return s.single(tok, DocEnd, 3)
		case c == '%':
			return s.scanDirective(tok)
		}
	}

	switch {
	case c == '-' && s.isBlankZ(s.pos+1) && s.flowLevel == 0:
		return s.single(tok, SeqEntry, 1)
	case c == '?' && s.isBlankZ(s.pos+1) && s.flowLevel == 0:
		return s.single(tok, ExplicitKey, 1)
	case c == ':' && (s.isBlankZ(s.pos+1) || (s.flowLevel > 0 && isFlowIndicator(s.at(s.pos+1)))):
		return s.single(tok, MappingValue, 1)
	case c == '[':
		s.flowLevel++
		return s.single(tok, FlowSeqStart, 1)
	case c == '{':
		s.flowLevel++
		return s.single(tok, FlowMapStart, 1)
	case (c == ']' || c == '}') && s.flowLevel > 0:
		s.flowLevel--
		if c == ']' {
			return s.single(tok, FlowSeqEnd, 1)
		}
		return s.single(tok, FlowMapEnd, 1)
	case c == ',' && s.flowLevel > 0:
		return s.single(tok, FlowEntry, 1)
	case c == ']' || c == '}' || c == ',':
		s.report(s.pos, fmt.Sprintf("unexpected flow indicator '%c' outside a flow collection", c), false)
		return s.single(tok, Invalid, 1)
	case c == '&' || c == '*':
		return s.scanAnchor(tok)
	case c == '!':
		return s.scanTag(tok)
	case (c == '|' || c == '>') && s.flowLevel == 0:
		return s.scanBlockHeader(tok)
	case c == '\'' || c == '"':
		return s.scanQuoted(tok)
	case c == '@' || c == '`':
		s.report(s.pos, fmt.Sprintf("reserved character '%c' cannot start a plain scalar", c), false)
	}
	return s.scanPlain(tok)
}

func (s *Scanner) single(tok Token, kind Kind, width int) Token {
	s.pos += width
	tok.Kind = kind
	tok.End = s.pos
	return tok
}

func (s *Scanner) scanDirective(tok Token) Token {
	i := s.pos
	for i < s.end && s.src[i] != '\n' && !(s.src[i] == '#' && (s.src[i-1] == ' ' || s.src[i-1] == '\t')) {
		i++
	}
	tok.Kind = Directive
	tok.Value = strings.TrimRight(s.src[s.pos+1:i], " \t\r")
	tok.End = s.pos + 1 + len(tok.Value)
	s.pos = i
	return tok
}

func (s *Scanner) scanName() int {
	i := s.pos + 1
	for i < s.end && !s.isBlankZ(i) && !(s.flowLevel > 0 && isFlowIndicator(s.src[i])) {
		i++
	}
	return i
}

func (s *Scanner) scanAnchor(tok Token) Token {
	end := s.scanName()
	tok.Kind = Anchor
	if s.src[s.pos] == '*' {
		tok.Kind = Alias
	}
	tok.Value = s.src[s.pos+1 : end]
	if len(tok.Value) == 0 {
		s.report(s.pos, "name of an anchor or alias must contain at least one character", false)
	}
	s.pos = end
	tok.End = end
	if tok.Kind == Alias {
		s.checkKey(&tok)
	}
	return tok
}

func (s *Scanner) scanTag(tok Token) Token {
	end := s.scanName()
	tok.Kind = Tag
	tok.Value = s.src[s.pos:end]
	s.pos = end
	tok.End = end
	return tok
}

// checkKey marks tok as an implicit key when ':' follows it on the same line.
func (s *Scanner) checkKey(tok *Token) {
	i := s.pos
	for i < s.end && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if s.at(i) == ':' && (s.isBlankZ(i+1) || (s.flowLevel > 0 && isFlowIndicator(s.at(i+1)))) {
		tok.IsKey = true
	}
}

// scanPlain scans a plain scalar up to the end of its line. Continuation
// lines are separate tokens.
func (s *Scanner) scanPlain(tok Token) Token {
	i, last := s.pos, s.pos
	for i < s.end {
		c := s.src[i]
		if c == '\n' {
			break
		}
		if c == ':' && (s.isBlankZ(i+1) || (s.flowLevel > 0 && isFlowIndicator(s.at(i+1)))) {
			break
		}
		if c == '#' && i > s.pos && (s.src[i-1] == ' ' || s.src[i-1] == '\t') {
			break
		}
		if s.flowLevel > 0 && isFlowIndicator(c) {
			break
		}
		i++
		if c != ' ' && c != '\t' && c != '\r' {
			last = i
		}
	}
	tok.Kind = Plain
	tok.End = last
	tok.Value = s.src[tok.Start:last]
	s.pos = last
	s.checkKey(&tok)
	return tok
}
