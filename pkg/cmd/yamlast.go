// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlast/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YamlastOptions struct{}

func NewDefaultYamlastOptions() *YamlastOptions {
	return &YamlastOptions{}
}

func NewDefaultYamlastCmd() *cobra.Command {
	return NewYamlastCmd(NewDefaultYamlastOptions())
}

func NewYamlastCmd(o *YamlastOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlast",
		Version: version.Version,
		Short:   "yamlast parses YAML into a position-annotated syntax tree",
		Long: `yamlast parses YAML into a position-annotated syntax tree.

Malformed input does not stop parsing: errors are collected with their
positions and the rest of the document is still parsed.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewParseCmd(NewParseOptions()))
	cmd.AddCommand(NewCheckCmd(NewCheckOptions()))
	cmd.AddCommand(NewWatchCmd(NewWatchOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
