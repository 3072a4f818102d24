// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import "fmt"

type Kind int

// Numbering is stable; tools persist it.
const (
	KindScalar Kind = iota
	KindMapping
	KindMap
	KindSequence
	KindAnchorRef
	KindIncludeRef
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	case KindAnchorRef:
		return "anchor reference"
	case KindIncludeRef:
		return "include reference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Node interface {
	Kind() Kind

	StartPosition() int
	EndPosition() int

	// Parent is the enclosing node (nil for the root of a document).
	// It does not own the node.
	Parent() Node

	// Errors are the recovery errors anchored to this node. They are
	// also part of Document.Errors.
	Errors() []*ParseError

	// Anchor is the name defined with "&name" on this node, if any.
	Anchor() string
	// Tag is the tag written on this node, if any (e.g. "!!str").
	Tag() string

	sealed() // limit the concrete types of Node to the six kinds above.
}

var _ = []Node{&Scalar{}, &Mapping{}, &Map{}, &Sequence{}, &AnchorRef{}, &IncludeRef{}}

type node struct {
	start  int
	end    int
	parent Node
	errs   []*ParseError
	anchor string
	tag    string
}

type ScalarStyle int

const (
	PlainStyle ScalarStyle = iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
)

func (s ScalarStyle) String() string {
	switch s {
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single-quoted"
	case DoubleQuotedStyle:
		return "double-quoted"
	case LiteralStyle:
		return "literal"
	case FoldedStyle:
		return "folded"
	default:
		return fmt.Sprintf("ScalarStyle(%d)", int(s))
	}
}

type Scalar struct {
	node

	// Value is the scalar's content with quoting, escapes and folding resolved.
	Value string
	// RawValue is the source text the scalar was parsed from.
	RawValue string
	Style    ScalarStyle
	// NodeIndent is the indentation of the line the scalar starts on.
	NodeIndent int
}

// Mapping is a single key/value pair of a Map. Value is nil when the
// source has no (valid) value for the key.
type Mapping struct {
	node

	Key   *Scalar
	Value Node
}

type Map struct {
	node

	Mappings []*Mapping
	flow     bool
}

type Sequence struct {
	node

	// Items holds nil for entries without content (e.g. "- ").
	Items []Node

	entryStarts []int // offsets of each item's "-" indicator
	flow        bool
}

// AnchorRef is an alias ("*name") to a node anchored earlier in the same
// document. Value is that node (nil if no such anchor exists); it is not a
// child of the AnchorRef.
type AnchorRef struct {
	node

	Name  string
	Value Node
}

// IncludeRef is a reference to external content written as "!include path".
// It is recorded but not expanded.
type IncludeRef struct {
	node

	Path string
}
