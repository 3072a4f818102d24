// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"carvel.dev/yamlast/pkg/cmd/ui"
	"carvel.dev/yamlast/pkg/files"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/spf13/cobra"
)

// InputFlags are the flags every command uses to select and parse files.
type InputFlags struct {
	Files      []string
	Recursive  bool
	ConfigPath string
	Debug      bool
}

func (s *InputFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&s.Recursive, "recursive", "R", false, "Interpret file as directory")
	cmd.Flags().StringVar(&s.ConfigPath, "config", "", "Path to TOML config (defaults to "+DefaultConfigFile+" if present)")
	cmd.Flags().BoolVar(&s.Debug, "debug", false, "Enable debug output")
}

// ParsedFile is a file together with the documents parsed from it.
type ParsedFile struct {
	File   *files.File
	DocSet *yamlast.DocumentSet
}

// Load resolves the selected files and parses each of them.
func (s InputFlags) Load(ui ui.UI) ([]ParsedFile, Config, error) {
	cfg, err := LoadConfig(s.ConfigPath)
	if err != nil {
		return nil, Config{}, err
	}
	if len(s.Files) == 0 {
		return nil, Config{}, fmt.Errorf("Expected at least one file to be given (via --file/-f)")
	}

	filesToProcess, err := files.NewFiles(s.Files, s.Recursive)
	if err != nil {
		return nil, Config{}, err
	}

	var result []ParsedFile

	for _, file := range filesToProcess {
		data, err := file.Bytes()
		if err != nil {
			return nil, Config{}, fmt.Errorf("Reading %s: %s", file.Description(), err)
		}

		t1 := time.Now()
		docSet := yamlast.NewDocumentSetFromBytes(data, cfg.DocSetOpts(file.RelativePath()))
		ui.Debugf("parsed %s: %d documents, %d errors in %s\n",
			file.RelativePath(), len(docSet.Items), len(docSet.Errors()), time.Since(t1))

		result = append(result, ParsedFile{File: file, DocSet: docSet})
	}

	return result, cfg, nil
}
