// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"carvel.dev/yamlast/pkg/cmd/ui"
	"carvel.dev/yamlast/pkg/diagnostics"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/spf13/cobra"
)

type CheckOptions struct {
	Input         InputFlags
	DuplicateKeys bool
}

// CheckResult counts what a check run reported.
type CheckResult struct {
	Files    int
	Errors   int
	Warnings int
}

func NewCheckOptions() *CheckOptions {
	return &CheckOptions{}
}

func NewCheckCmd(o *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report syntax errors of YAML files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Input.Set(cmd)
	cmd.Flags().BoolVar(&o.DuplicateKeys, "duplicate-keys", false, "Also report duplicated mapping keys")
	return cmd
}

func (o *CheckOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Input.Debug))
}

func (o *CheckOptions) RunWithUI(ui ui.UI) error {
	result, err := o.Check(ui)
	if err != nil {
		return err
	}
	if result.Errors > 0 {
		return fmt.Errorf("Found %d error(s) in %d file(s)", result.Errors, result.Files)
	}
	return nil
}

// Check prints every problem of the selected files and a summary line.
func (o *CheckOptions) Check(ui ui.UI) (CheckResult, error) {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	parsed, cfg, err := o.Input.Load(ui)
	if err != nil {
		return CheckResult{}, err
	}
	duplicateKeys := o.DuplicateKeys || cfg.Check.DuplicateKeys

	result := CheckResult{Files: len(parsed)}

	for _, pf := range parsed {
		renderer := diagnostics.NewRenderer(pf.DocSet.Source, pf.File.RelativePath(), ui.Colored())

		for _, perr := range pf.DocSet.Errors() {
			if perr.Warning {
				result.Warnings++
			} else {
				result.Errors++
			}
			ui.Printf("%s\n", renderer.Format(perr))
		}

		if !duplicateKeys {
			continue
		}
		for _, doc := range pf.DocSet.Items {
			for _, dup := range yamlast.DuplicateKeys(doc.Root) {
				result.Warnings++
				ui.Printf("%s\n", renderer.FormatDuplicateKey(dup))
			}
		}
	}

	ui.Printf("Checked %d file(s): %d error(s), %d warning(s)\n", result.Files, result.Errors, result.Warnings)
	return result, nil
}
