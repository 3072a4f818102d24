// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt implements the "fmt" command: writing parsed YAML back out
in a canonical form (two space indentation, block collections, one entry
per line) while keeping scalar styles, anchors, tags, aliases and includes.
*/
package yamlfmt
