// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"carvel.dev/yamlast/pkg/experiments"
	"carvel.dev/yamlast/pkg/yamlast"
	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read from the working directory when no --config is given.
const DefaultConfigFile = ".yamlast.toml"

// Config is the optional TOML configuration shared by all commands.
type Config struct {
	MaxDepth        int    `toml:"max_depth"`
	IncludeTag      string `toml:"include_tag"`
	ParallelWorkers int    `toml:"parallel_workers"`

	Check CheckConfig `toml:"check"`
}

type CheckConfig struct {
	DuplicateKeys bool `toml:"duplicate_keys"`
}

// LoadConfig decodes the config file at path. An empty path falls back to
// DefaultConfigFile, which may be missing.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("Reading config '%s': %s", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("Reading config '%s': unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("Reading config '%s': max_depth must not be negative", path)
	}
	if cfg.IncludeTag != "" && !strings.HasPrefix(cfg.IncludeTag, "!") {
		return Config{}, fmt.Errorf("Reading config '%s': include_tag must start with '!'", path)
	}
	return cfg, nil
}

// DocSetOpts builds parser options for the file named name.
func (c Config) DocSetOpts(name string) yamlast.DocSetOpts {
	opts := yamlast.DocSetOpts{
		AssociatedName: name,
		MaxDepth:       c.MaxDepth,
		IncludeTag:     c.IncludeTag,
	}
	if experiments.IsParallelEnabled() {
		opts.Parallel = c.ParallelWorkers
		if opts.Parallel <= 0 {
			opts.Parallel = runtime.NumCPU()
		}
	}
	return opts
}
