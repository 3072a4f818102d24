// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const stdinName = "stdin.yml"

var yamlExts = []string{".yaml", ".yml"}

// File is an input document source together with the name it is reported under.
type File struct {
	src  Source
	name string
}

// NewFiles resolves paths into Files. "-" is stdin, http(s) URLs are
// fetched, and directories are walked for YAML files when recursive is set.
// Files are named by their base name, or by their path within a walked
// directory.
func NewFiles(paths []string, recursive bool) ([]*File, error) {
	var result []*File
	stdinUsed := false

	for _, arg := range paths {
		switch {
		case arg == "-":
			if stdinUsed {
				return nil, fmt.Errorf("Expected standard input ('-') to be given at most once")
			}
			stdinUsed = true
			result = append(result, &File{NewStdinSource(os.Stdin), stdinName})

		case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
			result = append(result, &File{NewHTTPSource(arg), path.Base(arg)})

		default:
			walked, err := localFiles(arg, recursive)
			if err != nil {
				return nil, err
			}
			result = append(result, walked...)
		}
	}
	return result, nil
}

func localFiles(root string, recursive bool) ([]*File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("Checking file '%s': %s", root, err)
	}
	if !info.IsDir() {
		return []*File{{NewLocalSource(root), filepath.Base(root)}}, nil
	}
	if !recursive {
		return nil, fmt.Errorf("Expected file '%s' to not be a directory (use --recursive)", root)
	}

	var found []string
	err = filepath.WalkDir(root, func(walked string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || !isYAML(walked) {
			return err
		}
		found = append(found, walked)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing files '%s': %s", root, err)
	}
	sort.Strings(found)

	var result []*File
	for _, walked := range found {
		name, err := filepath.Rel(root, walked)
		if err != nil {
			return nil, fmt.Errorf("Naming file '%s': %s", walked, err)
		}
		result = append(result, &File{NewLocalSource(walked), name})
	}
	return result, nil
}

func (f *File) Description() string    { return f.src.Description() }
func (f *File) RelativePath() string   { return f.name }
func (f *File) Bytes() ([]byte, error) { return f.src.Bytes() }

// LocalPath returns the path on disk for files read from the filesystem.
func (f *File) LocalPath() (string, bool) {
	if local, ok := f.src.(LocalSource); ok {
		return local.Path(), true
	}
	return "", false
}

func isYAML(name string) bool {
	ext := filepath.Ext(name)
	for _, yamlExt := range yamlExts {
		if ext == yamlExt {
			return true
		}
	}
	return false
}
