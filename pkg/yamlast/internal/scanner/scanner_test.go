// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanned struct {
	Kind  Kind
	Start int
	End   int
	Value string
}

func scanAll(src string) ([]scanned, []string) {
	var problems []string
	sc := New(src, 0, len(src), func(offset int, msg string, fatal bool) {
		problems = append(problems, fmt.Sprintf("%d: %s", offset, msg))
	})

	var toks []scanned
	for {
		tok := sc.Next()
		toks = append(toks, scanned{tok.Kind, tok.Start, tok.End, tok.Value})
		if tok.Kind == EOF {
			return toks, problems
		}
	}
}

func TestScannerTokens(t *testing.T) {
	toks, problems := scanAll("a: 'b'\n- &x !t *y\n")
	require.Empty(t, problems)

	assert.Equal(t, []scanned{
		{Plain, 0, 1, "a"},
		{MappingValue, 1, 2, ""},
		{SingleQuoted, 3, 6, "b"},
		{SeqEntry, 7, 8, ""},
		{Anchor, 9, 11, "x"},
		{Tag, 12, 14, "!t"},
		{Alias, 15, 17, "y"},
		{EOF, 18, 18, ""},
	}, toks)
}

func TestScannerLineInformation(t *testing.T) {
	const src = "key: value # note\n  nested: 1\n"
	sc := New(src, 0, len(src), nil)

	key := sc.Next()
	assert.True(t, key.IsKey)
	assert.True(t, key.FirstOnLine)
	assert.Equal(t, 0, key.Line)

	sc.Next()
	value := sc.Next()
	assert.False(t, value.FirstOnLine)
	assert.False(t, value.IsKey)
	assert.Equal(t, "value", value.Value)

	nested := sc.Next()
	assert.True(t, nested.FirstOnLine)
	assert.True(t, nested.AfterComment)
	assert.Equal(t, 1, nested.Line)
	assert.Equal(t, 2, nested.Column)
	assert.Equal(t, 2, nested.LineIndent)
}

func TestScannerDocumentMarkers(t *testing.T) {
	toks, _ := scanAll("--- # c\n...\n%YAML 1.2\n")

	assert.Equal(t, []scanned{
		{DocStart, 0, 3, ""},
		{DocEnd, 8, 11, ""},
		{Directive, 12, 21, "YAML 1.2"},
		{EOF, 22, 22, ""},
	}, toks)
}

func TestScannerFlowIndicators(t *testing.T) {
	toks, problems := scanAll("[a, {b: c}]")
	require.Empty(t, problems)

	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{FlowSeqStart, Plain, FlowEntry, FlowMapStart, Plain, MappingValue, Plain, FlowMapEnd, FlowSeqEnd, EOF}, kinds)
}

func TestScannerQuotedScalars(t *testing.T) {
	toks, problems := scanAll(`"a\x41\u00e9\n\
  b" 'it''s
  folded'`)
	require.Empty(t, problems)

	assert.Equal(t, "aA\u00e9\nb", toks[0].Value)
	assert.Equal(t, DoubleQuoted, toks[0].Kind)
	assert.Equal(t, "it's folded", toks[1].Value)
}

func TestScannerQuotedScalarFoldingIsLinear(t *testing.T) {
	const line = "word word word word word  \n"
	src := "\"" + strings.Repeat(line, 40000) + "\""

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	toks, problems := scanAll(src)
	runtime.ReadMemStats(&after)

	require.Empty(t, problems)
	assert.Equal(t, strings.Repeat("word word word word word ", 40000), toks[0].Value)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16*len(src)))
}

func TestScannerProblems(t *testing.T) {
	_, problems := scanAll("\"\\q\"\n")
	assert.Equal(t, []string{`1: unknown escape sequence '\q'`}, problems)

	_, problems = scanAll("a:\n\tb: 1\n")
	assert.Equal(t, []string{"3: tab characters must not be used in indentation"}, problems)

	_, problems = scanAll("a: ]\n")
	assert.Equal(t, []string{"3: unexpected flow indicator ']' outside a flow collection"}, problems)

	_, problems = scanAll("'open\n")
	assert.Equal(t, []string{"0: unexpected end of the stream within a single-quoted scalar"}, problems)
}

func TestScannerBlockScalar(t *testing.T) {
	const src = "|2-\n   x\n  y\n\nnext"
	sc := New(src, 0, len(src), nil)

	header := sc.Next()
	require.Equal(t, Literal, header.Kind)
	assert.Equal(t, StripChomping, header.Chomping)
	assert.Equal(t, 2, header.IndentHint)

	value, end := sc.BlockScalar(header, -1)
	assert.Equal(t, " x\ny", value)
	assert.Equal(t, 12, end)

	next := sc.Next()
	assert.Equal(t, "next", next.Value)
	assert.True(t, next.FirstOnLine)
}

func TestScannerBlockScalarKeepsSpacesOfBlankLines(t *testing.T) {
	const src = "|\n  x\n     \n  y"
	sc := New(src, 0, len(src), nil)

	value, end := sc.BlockScalar(sc.Next(), -1)
	assert.Equal(t, "x\n   \ny", value)
	assert.Equal(t, len(src), end)

	const folded = ">\n  x\n     \n  y\n\n  z"
	sc = New(folded, 0, len(folded), nil)

	value, _ = sc.BlockScalar(sc.Next(), -1)
	assert.Equal(t, "x\n   \ny\nz", value)
}

func TestScannerBlockScalarKeepsTrailingLines(t *testing.T) {
	const src = ">+\n  a\n  b\n\n"
	sc := New(src, 0, len(src), nil)

	value, end := sc.BlockScalar(sc.Next(), -1)
	assert.Equal(t, "a b\n\n", value)
	assert.Equal(t, 10, end)
}

func TestScannerSkipsByteOrderMark(t *testing.T) {
	toks, problems := scanAll("\ufeffa: 1")
	require.Empty(t, problems)

	assert.Equal(t, scanned{Plain, 3, 4, "a"}, toks[0])
}

func TestScannerRespectsSegmentBounds(t *testing.T) {
	const src = "a: 1\n---\nb: 2\n"
	sc := New(src, 9, len(src), nil)

	tok := sc.Next()
	assert.Equal(t, "b", tok.Value)
	assert.Equal(t, 9, tok.Start)
	assert.Equal(t, 0, tok.Column)
}
