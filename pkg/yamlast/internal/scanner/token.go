// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import "fmt"

type Kind int

const (
	EOF Kind = iota
	DocStart
	DocEnd
	Directive
	SeqEntry
	MappingValue
	ExplicitKey
	Anchor
	Alias
	Tag
	Plain
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
	FlowSeqStart
	FlowSeqEnd
	FlowMapStart
	FlowMapEnd
	FlowEntry
	Invalid
)

var kindNames = map[Kind]string{
	EOF:          "end of stream",
	DocStart:     "document start",
	DocEnd:       "document end",
	Directive:    "directive",
	SeqEntry:     "sequence entry",
	MappingValue: "mapping value",
	ExplicitKey:  "explicit key",
	Anchor:       "anchor",
	Alias:        "alias",
	Tag:          "tag",
	Plain:        "plain scalar",
	SingleQuoted: "single-quoted scalar",
	DoubleQuoted: "double-quoted scalar",
	Literal:      "literal block scalar",
	Folded:       "folded block scalar",
	FlowSeqStart: "'['",
	FlowSeqEnd:   "']'",
	FlowMapStart: "'{'",
	FlowMapEnd:   "'}'",
	FlowEntry:    "','",
	Invalid:      "invalid token",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsScalar reports whether tokens of this kind carry a flow scalar.
func (k Kind) IsScalar() bool {
	return k == Plain || k == SingleQuoted || k == DoubleQuoted
}

type Chomping int

const (
	ClipChomping Chomping = iota
	StripChomping
	KeepChomping
)

// Token is a lexical unit of a document segment. Offsets index the full
// source, not the segment.
type Token struct {
	Kind  Kind
	Start int
	End   int

	Line       int // 0 based, counted from the segment start
	Column     int
	LineIndent int

	// FirstOnLine is set for the first token scanned on a line.
	FirstOnLine bool
	// AfterComment is set when a comment was skipped right before the token.
	AfterComment bool
	// IsKey is set when the token is followed by ':' on the same line.
	IsKey bool

	// Value holds the decoded text of scalars, the name of anchors and aliases,
	// the handle and suffix of tags and the body of directives.
	Value string

	Chomping   Chomping
	IndentHint int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %d..%d %q", t.Kind, t.Start, t.End, t.Value)
}
