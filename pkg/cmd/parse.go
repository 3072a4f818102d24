// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"carvel.dev/yamlast/pkg/cmd/ui"
	"carvel.dev/yamlast/pkg/filepos"
	"carvel.dev/yamlast/pkg/orderedmap"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	outputTree      = "tree"
	outputPositions = "positions"
	outputYAML      = "yaml"
	outputJSON      = "json"
)

type ParseOptions struct {
	Input  InputFlags
	Output string
	// At selects the node containing this byte offset. Negative means unset.
	At       int
	SortKeys bool
}

func NewParseOptions() *ParseOptions {
	return &ParseOptions{Output: outputTree, At: -1}
}

func NewParseCmd(o *ParseOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the syntax tree of YAML files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Input.Set(cmd)
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format (tree, positions, yaml, json)")
	cmd.Flags().IntVar(&o.At, "at", o.At, "Only print the innermost node containing this byte offset")
	cmd.Flags().BoolVar(&o.SortKeys, "sort-keys", false, "Sort mapping keys in yaml and json output")
	return cmd
}

func (o *ParseOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Input.Debug))
}

func (o *ParseOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	switch o.Output {
	case outputTree, outputPositions, outputYAML, outputJSON:
	default:
		return fmt.Errorf("Unknown output format '%s' (expected tree, positions, yaml or json)", o.Output)
	}

	parsed, _, err := o.Input.Load(ui)
	if err != nil {
		return err
	}

	for _, pf := range parsed {
		if o.At >= 0 {
			o.printNodeAt(ui.Stdout(), pf)
			continue
		}

		switch o.Output {
		case outputTree:
			yamlast.NewPrinterWithOpts(ui.Stdout(), yamlast.PrinterOpts{ExcludeRefs: true}).Print(pf.DocSet)

		case outputPositions:
			if err := printPositions(ui.Stdout(), pf.DocSet); err != nil {
				return fmt.Errorf("Printing positions of %s: %s", pf.File.Description(), err)
			}

		case outputYAML, outputJSON:
			vals, err := pf.DocSet.AsInterfaces()
			if err != nil {
				return fmt.Errorf("Converting %s: %s", pf.File.Description(), err)
			}
			if o.SortKeys {
				for i, val := range vals {
					vals[i] = orderedmap.Conversion{Object: val}.AsUnorderedStringMaps()
				}
			}
			if err := printValues(ui.Stdout(), vals, o.Output); err != nil {
				return fmt.Errorf("Encoding %s: %s", pf.File.Description(), err)
			}
		}

		for _, perr := range pf.DocSet.Errors() {
			ui.Warnf("%s\n", perr.Error())
		}
	}

	return nil
}

func (o *ParseOptions) printNodeAt(out io.Writer, pf ParsedFile) {
	name := pf.File.RelativePath()
	index := filepos.NewLineIndex(pf.DocSet.Source, "")

	for _, doc := range pf.DocSet.Items {
		if o.At < doc.StartPosition() || o.At >= doc.EndPosition() {
			continue
		}
		node := yamlast.NodeAt(doc.Root, o.At)
		if node == nil {
			fmt.Fprintf(out, "%s:%s: no node\n", name, index.Position(o.At).AsCompactString())
			return
		}
		fmt.Fprintf(out, "%s: %s\n", name, positionLine(index, node))
		return
	}
	fmt.Fprintf(out, "%s: offset %d is outside of the source\n", name, o.At)
}

func printPositions(out io.Writer, docSet *yamlast.DocumentSet) error {
	index := filepos.NewLineIndex(docSet.Source, "")

	for i, doc := range docSet.Items {
		_, err := fmt.Fprintf(out, "--- doc %d %s-%s\n", i,
			index.Position(doc.StartPosition()).AsCompactString(),
			index.Position(doc.EndPosition()).AsCompactString())
		if err != nil {
			return err
		}

		err = yamlast.Walk(doc.Root, yamlast.WalkerFunc(func(n yamlast.Node) error {
			_, err := fmt.Fprintf(out, "%s\n", positionLine(index, n))
			return err
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

// positionLine renders "kind start-end path" where start and end are line:col.
func positionLine(index *filepos.LineIndex, n yamlast.Node) string {
	path := yamlast.Path(n)

	mapping, isMapping := n.(*yamlast.Mapping)
	if !isMapping {
		// a key is addressed like the mapping it names
		if parent, ok := n.Parent().(*yamlast.Mapping); ok && yamlast.Node(parent.Key) == n {
			mapping = parent
		}
	}
	if mapping != nil && mapping.Key != nil {
		if path != "" {
			path += "."
		}
		path += mapping.Key.Value
	}
	if path == "" {
		path = "."
	}
	return fmt.Sprintf("%-17s %s-%s %s", n.Kind(),
		index.Position(n.StartPosition()).AsCompactString(),
		index.Position(n.EndPosition()).AsCompactString(), path)
}

func printValues(out io.Writer, vals []interface{}, format string) error {
	for i, val := range vals {
		var data []byte
		var err error

		if format == outputJSON {
			data, err = json.MarshalIndent(val, "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(val)
			if i > 0 {
				data = append([]byte("---\n"), data...)
			}
		}
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return nil
}
