// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]string{
	'0':  "\x00",
	'a':  "\a",
	'b':  "\b",
	't':  "\t",
	'\t': "\t",
	'n':  "\n",
	'v':  "\v",
	'f':  "\f",
	'r':  "\r",
	'e':  "\x1b",
	' ':  " ",
	'"':  "\"",
	'/':  "/",
	'\\': "\\",
	'N':  "\u0085",
	'_':  "\u00a0",
	'L':  "\u2028",
	'P':  "\u2029",
}

var hexEscapeWidths = map[byte]int{'x': 2, 'u': 4, 'U': 8}

func (s *Scanner) scanQuoted(tok Token) Token {
	quote := s.src[s.pos]
	tok.Kind = SingleQuoted
	style := "single"
	if quote == '"' {
		tok.Kind = DoubleQuoted
		style = "double"
	}

	var out []byte
	i := s.pos + 1
	for {
		if i >= s.end {
			s.report(tok.Start, fmt.Sprintf("unexpected end of the stream within a %s-quoted scalar", style), true)
			tok.End = s.end
			tok.Value = string(out)
			s.pos = s.end
			return tok
		}

		c := s.src[i]
		switch {
		case quote == '\'' && c == '\'':
			if s.at(i+1) == '\'' {
				out = append(out, '\'')
				i += 2
				continue
			}
			i++
		case quote == '"' && c == '"':
			i++
		case quote == '"' && c == '\\':
			i = s.scanEscape(i, &out)
			continue
		case c == '\n':
			i = s.foldQuotedBreak(i, &out)
			continue
		default:
			out = append(out, c)
			i++
			continue
		}
		break
	}

	tok.End = i
	tok.Value = string(out)
	s.pos = i
	s.checkKey(&tok)
	return tok
}

// foldQuotedBreak folds the line break at i and the following empty lines.
func (s *Scanner) foldQuotedBreak(i int, out *[]byte) int {
	*out = (*out)[:len(bytes.TrimRight(*out, " \t\r"))]

	s.newLine(i)
	i++
	empty := 0
	for {
		for i < s.end && (s.src[i] == ' ' || s.src[i] == '\t') {
			i++
		}
		if s.at(i) == '\r' && s.at(i+1) == '\n' {
			i++
		}
		if i < s.end && s.src[i] == '\n' {
			empty++
			s.newLine(i)
			i++
			continue
		}
		break
	}
	s.lineHasToken = true

	if empty > 0 {
		*out = append(*out, strings.Repeat("\n", empty)...)
	} else {
		*out = append(*out, ' ')
	}
	return i
}

func (s *Scanner) scanEscape(i int, out *[]byte) int {
	next := s.at(i + 1)
	if next == '\n' || (next == '\r' && s.at(i+2) == '\n') {
		// escaped line break joins the lines without a space
		if next == '\r' {
			i++
		}
		s.newLine(i + 1)
		i += 2
		for i < s.end && (s.src[i] == ' ' || s.src[i] == '\t') {
			i++
		}
		s.lineHasToken = true
		return i
	}
	if repl, ok := simpleEscapes[next]; ok {
		*out = append(*out, repl...)
		return i + 2
	}
	if width, ok := hexEscapeWidths[next]; ok {
		digits := ""
		if i+2+width <= s.end {
			digits = s.src[i+2 : i+2+width]
		}
		code, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || len(digits) != width {
			s.report(i, "expected hexadecimal number in an escape sequence", false)
			*out = append(*out, next)
			return i + 2
		}
		if !utf8.ValidRune(rune(code)) {
			s.report(i, "invalid unicode code point in an escape sequence", false)
			return i + 2 + width
		}
		*out = utf8.AppendRune(*out, rune(code))
		return i + 2 + width
	}
	s.report(i, fmt.Sprintf("unknown escape sequence '\\%c'", next), false)
	*out = append(*out, next)
	return i + 2
}
