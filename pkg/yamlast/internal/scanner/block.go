// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import "strings"

func (s *Scanner) scanBlockHeader(tok Token) Token {
	tok.Kind = Literal
	if s.src[s.pos] == '>' {
		tok.Kind = Folded
	}

	i := s.pos + 1
	for ; i < s.end; i++ {
		c := s.src[i]
		if c == '+' {
			tok.Chomping = KeepChomping
		} else if c == '-' {
			tok.Chomping = StripChomping
		} else if c >= '1' && c <= '9' {
			tok.IndentHint = int(c - '0')
		} else {
			break
		}
	}
	tok.End = i

	for i < s.end && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if s.at(i) == '#' && i > tok.End {
		for i < s.end && s.src[i] != '\n' {
			i++
		}
	}
	if i < s.end && s.src[i] != '\n' && s.src[i] != '\r' {
		s.report(i, "a block scalar header must end with a line break", false)
		for i < s.end && s.src[i] != '\n' {
			i++
		}
	}
	s.pos = i
	return tok
}

type blockLine struct {
	text  string
	empty bool
}

// BlockScalar reads the body of the block scalar whose header was returned
// by the last call to Next. parentIndent is the indentation of the enclosing
// collection (-1 at the top level). It returns the decoded value and the end
// offset of the last content line.
func (s *Scanner) BlockScalar(header Token, parentIndent int) (string, int) {
	if s.peeked != nil {
		panic("Expected block scalar body to be read right after its header")
	}

	contentIndent := -1
	if header.IndentHint > 0 {
		contentIndent = max(parentIndent, 0) + header.IndentHint
	}

	i := s.pos
	if s.at(i) == '\r' {
		i++
	}
	if s.at(i) != '\n' {
		return "", header.End
	}
	i++

	var lines []blockLine
	lastContent, lastContentEnd := -1, -1
	trailingBreak := false

	for i < s.end {
		lineStart := i
		for i < s.end && s.src[i] != '\n' {
			i++
		}
		text := strings.TrimSuffix(s.src[lineStart:i], "\r")
		indent := len(text) - len(strings.TrimLeft(text, " "))

		if strings.TrimLeft(text, " \t") == "" {
			// spaces past the content indentation are content
			extra := ""
			if contentIndent >= 0 && indent >= contentIndent {
				extra = text[contentIndent:]
			}
			lines = append(lines, blockLine{text: extra, empty: extra == ""})
		} else {
			if indent == 0 && (isMarkerLine(text, "---") || isMarkerLine(text, "...")) {
				break
			}
			if contentIndent < 0 {
				if indent <= parentIndent {
					break
				}
				contentIndent = indent
			}
			if indent < contentIndent {
				break
			}
			lines = append(lines, blockLine{text: text[contentIndent:]})
			lastContent = len(lines) - 1
			lastContentEnd = lineStart + len(text)
			trailingBreak = i < s.end
		}
		if i >= s.end {
			break
		}
		i++
	}

	if lastContent < 0 {
		return "", header.End
	}

	s.line += strings.Count(s.src[s.pos:lastContentEnd], "\n")
	s.lineStart = strings.LastIndexByte(s.src[:lastContentEnd], '\n') + 1
	s.lineHasToken = true
	s.pos = lastContentEnd

	var value string
	if header.Kind == Literal {
		value = joinLiteral(lines[:lastContent+1])
	} else {
		value = joinFolded(lines[:lastContent+1])
	}

	switch header.Chomping {
	case ClipChomping:
		if trailingBreak {
			value += "\n"
		}
	case KeepChomping:
		if trailingBreak {
			value += "\n" + strings.Repeat("\n", len(lines)-lastContent-1)
		}
	}
	return value, lastContentEnd
}

func isMarkerLine(text, marker string) bool {
	return strings.HasPrefix(text, marker) &&
		(len(text) == len(marker) || text[len(marker)] == ' ' || text[len(marker)] == '\t')
}

func joinLiteral(lines []blockLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n")
}

func joinFolded(lines []blockLine) string {
	var out strings.Builder
	for i, l := range lines {
		if i == 0 {
			out.WriteString(l.text)
			continue
		}
		prev := lines[i-1]
		switch {
		case l.empty:
			out.WriteByte('\n')
		case prev.empty:
			out.WriteString(l.text)
		case moreIndented(l.text) || moreIndented(prev.text):
			out.WriteByte('\n')
			out.WriteString(l.text)
		default:
			out.WriteByte(' ')
			out.WriteString(l.text)
		}
	}
	return out.String()
}

func moreIndented(text string) bool {
	return len(text) > 0 && (text[0] == ' ' || text[0] == '\t')
}
