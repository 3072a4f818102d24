// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSegments(t *testing.T) {
	cases := []struct {
		Description string
		Data        string
		Expected    []segment
	}{
		{"empty input", "", []segment{{0, 0}}},
		{"single document", "a: 1\n", []segment{{0, 5}}},
		{"leading separator", "---\na: 1\n", []segment{{0, 9}}},
		{"separator between documents", "a: 1\n---\nb: 2\n", []segment{{0, 5}, {5, 14}}},
		{"comments after end marker stay", "a: 1\n...\n# c\n\n---\nb", []segment{{0, 14}, {14, 19}}},
		{"content after end marker starts a document", "a\n...\nb\n", []segment{{0, 6}, {6, 8}}},
		{"directives belong to the next document", "a\n...\n%YAML 1.2\n---\nb\n", []segment{{0, 6}, {6, 22}}},
		{"marker needs a separator", "---x\n--- y\n", []segment{{0, 5}, {5, 11}}},
		{"empty documents", "---\n---\n", []segment{{0, 4}, {4, 8}}},
		{"byte order mark before directives", "\ufeff%YAML 1.2\n---\na\n", []segment{{0, 19}}},
	}

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, splitSegments(tc.Data))
		})
	}
}

func TestGapEnd(t *testing.T) {
	const src = "a: 1\n  b: 2\n\nc: 3 # x\nd"

	assert.Equal(t, 6, gapEnd(src, 4, 7), "single line break with indentation")
	assert.Equal(t, 11, gapEnd(src, 11, 13), "blank line")
	assert.Equal(t, 17, gapEnd(src, 17, 22), "comment")
	assert.Equal(t, 4, gapEnd(src, 4, 4), "adjacent")

	const crlf = "a: 1\r\nb: 2\r\n  c: 3"
	assert.Equal(t, 4, gapEnd(crlf, 4, 6), "line break after carriage return")
	assert.Equal(t, 13, gapEnd(crlf, 10, 14), "carriage return before indentation")
}
