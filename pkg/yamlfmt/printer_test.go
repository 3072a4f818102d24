// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/yamlast/pkg/yamlast"
	"carvel.dev/yamlast/pkg/yamlfmt"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Example usage:
	//   go test ./pkg/yamlfmt -run TestYAMLFmt -args TestYAMLFmt.filetest=filetests/styles.yml
	selectedFileTestPath = kvArg("TestYAMLFmt.filetest")
	showErrs             = kvArg("TestYAMLFmt.errs") // eg t|...
)

func TestYAMLFmt(t *testing.T) {
	var files []string

	err := filepath.Walk("filetests", func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Listing files")
	}

	if len(selectedFileTestPath) > 0 {
		fmt.Printf("only running %s test(s)\n", selectedFileTestPath)
	}

	var errs []error

	for _, filePath := range files {
		if len(selectedFileTestPath) > 0 && !strings.HasPrefix(filePath, selectedFileTestPath) {
			continue
		}

		testDesc := fmt.Sprintf("checking %s ...\n", filePath)
		fmt.Printf("%s", testDesc)

		contents, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatal(err)
		}

		pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

		if len(pieces) != 2 {
			t.Fatalf("expected file %s to include +++ separator", filePath)
		}

		resultStr, err := formatSource(pieces[0])
		if err == nil {
			err = expectEquals(resultStr, pieces[1])
		}
		if err == nil {
			err = expectStable(pieces[0], resultStr)
		}

		if err != nil {
			fmt.Printf("   FAIL\n")
			if showErrs == "t" {
				sep := strings.Repeat(".", 80)
				fmt.Printf("%s\n%s%s\n", sep, err, sep)
			}
			errs = append(errs, fmt.Errorf("%s: %s", testDesc, err))
		} else {
			fmt.Printf("   .\n")
		}
	}

	if len(errs) > 0 {
		t.Errorf("%s", errs[0].Error())
	}

	if len(selectedFileTestPath) > 0 {
		t.Errorf("skipped tests")
	}
}

func TestPrinterExplicitDocumentStart(t *testing.T) {
	docSet := yamlast.NewDocumentSetFromBytes([]byte("a: 1\n"), yamlast.DocSetOpts{})

	out := yamlfmt.NewPrinterWithOpts(nil, yamlfmt.PrinterOpts{ExplicitDocumentStart: true}).PrintStr(docSet)
	assert.Equal(t, "---\na: 1\n", out)
}

func TestPrinterKeepsEmptyFirstDocument(t *testing.T) {
	docSet := yamlast.NewDocumentSetFromBytes([]byte("---\n---\nb: 2\n"), yamlast.DocSetOpts{})
	require.Len(t, docSet.Items, 2)

	assert.Equal(t, "---\n---\nb: 2\n", yamlfmt.NewPrinter(nil).PrintStr(docSet))
}

func TestPrinterQuotesWhatStylesCannotHold(t *testing.T) {
	root := yamlast.NewMap([]*yamlast.Mapping{
		yamlast.NewMapping(yamlast.NewScalar("plain"), yamlast.NewScalar("two\nlines")),
		yamlast.NewMapping(yamlast.NewScalar("flow"), yamlast.NewSeq(yamlast.NewScalar("a, b"))),
		yamlast.NewMapping(yamlast.NewScalar("inc"), yamlast.NewIncludeRef("lib.yml")),
		yamlast.NewMapping(yamlast.NewScalar("empty"), nil),
	})
	docSet := &yamlast.DocumentSet{Items: []*yamlast.Document{{Root: root}}}

	expected := `plain: "two\nlines"
flow:
  - a, b
inc: !include lib.yml
empty:
`
	assert.Equal(t, expected, yamlfmt.NewPrinter(nil).PrintStr(docSet))
}

func formatSource(src string) (string, error) {
	docSet := yamlast.NewDocumentSetFromBytes([]byte(src), yamlast.DocSetOpts{AssociatedName: "stdin"})
	if docSet.HasErrors() {
		return "", fmt.Errorf("parse errors: %v", docSet.Errors())
	}
	return yamlfmt.NewPrinter(nil).PrintStr(docSet), nil
}

// expectStable checks that formatted output parses into the same trees and
// formats to itself.
func expectStable(src, formatted string) error {
	again, err := formatSource(formatted)
	if err != nil {
		return fmt.Errorf("reparsing output: %s", err)
	}
	if err := expectEquals(again, formatted); err != nil {
		return fmt.Errorf("formatting is not stable: %s", err)
	}

	before := yamlast.NewDocumentSetFromBytes([]byte(src), yamlast.DocSetOpts{})
	after := yamlast.NewDocumentSetFromBytes([]byte(formatted), yamlast.DocSetOpts{})
	if len(before.Items) != len(after.Items) {
		return fmt.Errorf("expected %d documents, but got %d", len(before.Items), len(after.Items))
	}
	for i := range before.Items {
		if !yamlast.Equal(before.Items[i].Root, after.Items[i].Root) {
			return fmt.Errorf("document %d changed value", i)
		}
	}
	return nil
}

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("Not equal; diff expected...actual:\n%v", diff)
	}
	return nil
}

func kvArg(name string) string {
	name += "="
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, name) {
			return strings.TrimPrefix(arg, name)
		}
	}
	return ""
}
