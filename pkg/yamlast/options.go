// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

const (
	DefaultMaxDepth   = 512
	DefaultIncludeTag = "!include"
)

type ParserOpts struct {
	// AssociatedName is the file name attached to error positions.
	AssociatedName string
	// MaxDepth bounds collection nesting. Deeper input stops the parse of
	// its document with a "nesting too deep" error. Zero means DefaultMaxDepth.
	MaxDepth int
	// IncludeTag is the tag that turns a scalar into an IncludeRef.
	// Empty means DefaultIncludeTag.
	IncludeTag string
}

func (o ParserOpts) withDefaults() ParserOpts {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.IncludeTag == "" {
		o.IncludeTag = DefaultIncludeTag
	}
	return o
}
