// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlast parses YAML into a position-annotated syntax tree that
survives malformed input.

Instead of stopping at the first syntax error, the parser records the error
on the Document and keeps building as much of the tree as possible around it.
Every Node knows the byte offsets it spans in the source (StartPosition is
inclusive, EndPosition exclusive) so that tools can map nodes back to
source ranges.

The tree is made of six kinds of nodes: Scalar, Mapping (a single key/value
pair), Map (ordered Mappings), Sequence, AnchorRef (an alias to an anchored
node) and IncludeRef (an "!include" reference that is recorded, not expanded).

Walk and WalkWithParent traverse a tree depth-first. Accept dispatches a
Node to a typed Visitor, which is how copies, validators and
conversions are built.
*/
package yamlast
