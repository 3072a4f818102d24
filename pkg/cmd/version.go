// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"carvel.dev/yamlast/pkg/experiments"
	"carvel.dev/yamlast/pkg/version"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	return o.RunWithWriter(os.Stdout)
}

func (o *VersionOptions) RunWithWriter(out io.Writer) error {
	fmt.Fprintf(out, "yamlast version %s\n", version.Version)
	fmt.Fprintf(out, "- supported YAML version %s\n", yamlast.SupportedYAMLVersion.Original())

	if enabled := experiments.GetEnabled(); len(enabled) > 0 {
		fmt.Fprintf(out, "- experiments: %v\n", enabled)
	}
	return nil
}
