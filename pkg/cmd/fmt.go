// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"carvel.dev/yamlast/pkg/cmd/ui"
	"carvel.dev/yamlast/pkg/yamlast"
	"carvel.dev/yamlast/pkg/yamlfmt"
	"github.com/spf13/cobra"
)

type FmtOptions struct {
	Input                 InputFlags
	ExplicitDocumentStart bool
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format YAML files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Input.Set(cmd)
	cmd.Flags().BoolVar(&o.ExplicitDocumentStart, "document-start", false, "Start the first document with '---' too")
	return cmd
}

func (o *FmtOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Input.Debug))
}

func (o *FmtOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	parsed, _, err := o.Input.Load(ui)
	if err != nil {
		return err
	}

	// nothing is written unless every file parses cleanly
	for _, pf := range parsed {
		if pf.DocSet.HasErrors() {
			return fmt.Errorf("Formatting %s:\n%s", pf.File.Description(), yamlast.ErrorList(pf.DocSet.Errors()))
		}
	}

	printer := yamlfmt.NewPrinterWithOpts(ui.Stdout(), yamlfmt.PrinterOpts{ExplicitDocumentStart: o.ExplicitDocumentStart})
	for _, pf := range parsed {
		printer.Print(pf.DocSet)
	}
	return nil
}
