// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of yamlast.

Packages are layered: the parser knows nothing about files or terminals, and
the commands only glue files, the parser and output together.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

yamlast is built into a command-line tool:

	./cmd/yamlast

# Commands

yamlast implements "parse", "check", "watch", "fmt" and "version". All of them
share the same file selection and configuration flags.

	(1) => pkg/cmd => (8)

# YAML Structures

At the heart of yamlast is a fault-tolerant YAML parser. It scans the source
itself (rather than wrapping an existing YAML library) so that every node
keeps exact byte offsets and parsing carries on past syntax errors.

	(3) => pkg/yamlast => (3)
	(1) => pkg/yamlast/internal/scanner => (0)

# Utilities

Reporting errors with source context and caret:

	(1) => pkg/diagnostics => (2)

The implementation of the "fmt" command:

	(1) => pkg/yamlfmt => (1)

The remainder are domain-agnostic utilities that provide either an
application-level capability or a specialized piece of logic.

	(3) => pkg/filepos => (0)
	(1) => pkg/files => (0)
	(1) => pkg/cmd/ui => (0)
	(1) => pkg/orderedmap => (0)
	(1) => pkg/version => (0)
	(1) => pkg/experiments => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/ui
	- pkg/diagnostics
	- pkg/experiments
	- pkg/filepos
	- pkg/files
	- pkg/version
	- pkg/yamlast
	- pkg/yamlfmt
	pkg/diagnostics:
	- pkg/filepos
	- pkg/yamlast
	pkg/yamlast:
	- pkg/filepos
	- pkg/orderedmap
	- pkg/yamlast/internal/scanner
	pkg/yamlfmt:
	- pkg/yamlast
*/
package pkg
