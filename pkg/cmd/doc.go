// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to yamlast's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing yamlast).

For a list of commands run:

	$ yamlast help

Commands share the -f/--file, -R/--recursive, --config and --debug flags (see InputFlags).
*/
package cmd
