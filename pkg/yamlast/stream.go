// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import "strings"

// segment is the part of a stream that makes up one document.
type segment struct {
	start int
	end   int
}

// splitSegments cuts src into document segments that together cover all
// of src. A "---" line starts a new document unless the current one only
// holds directives, comments or blank lines. A "..." line closes the current
// document; comments and blank lines after it still belong to it.
func splitSegments(src string) []segment {
	var segs []segment
	start := 0
	hasContent, hasStart, closed := false, false, false

	cut := func(at int) {
		segs = append(segs, segment{start, at})
		start = at
		hasContent, hasStart, closed = false, false, false
	}

	for lineStart := 0; lineStart < len(src); {
		lineEnd := strings.IndexByte(src[lineStart:], '\n')
		next := len(src)
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += lineStart
			next = lineEnd + 1
		}
		line := src[lineStart:lineEnd]
		if lineStart == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		switch trimmed := strings.TrimLeft(line, " \t\r"); {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
		case isMarkerLine(line, "..."):
			closed = true
		case isMarkerLine(line, "---"):
			if hasContent || hasStart || closed {
				cut(lineStart)
			}
			hasStart = true
		case strings.HasPrefix(line, "%") && (closed || !hasContent && !hasStart):
			if closed {
				cut(lineStart)
			}
		default:
			if closed {
				cut(lineStart)
			}
			hasContent = true
		}
		lineStart = next
	}

	return append(segs, segment{start, len(src)})
}

func isMarkerLine(line, marker string) bool {
	if !strings.HasPrefix(line, marker) {
		return false
	}
	if len(line) == len(marker) {
		return true
	}
	switch line[len(marker)] {
	case ' ', '\t', '\r':
		return true
	}
	return false
}
