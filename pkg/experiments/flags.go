// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"os"
	"slices"
	"strings"
)

// Env is the OS environment variable with comma-separated names of experiments to enable.
const Env = "YAMLASTEXPERIMENTS"

const parallel = "parallel"

// GetEnabled reports the name of all enabled experiments.
func GetEnabled() []string {
	experiments := []string{}
	if IsParallelEnabled() {
		experiments = append(experiments, parallel)
	}
	return experiments
}

// IsParallelEnabled reports whether documents of a stream are parsed
// concurrently by the CLI.
func IsParallelEnabled() bool {
	return isSet(parallel)
}

func isSet(flag string) bool {
	return slices.Contains(getSettings(), flag)
}

func getSettings() []string {
	if settings == nil {
		for _, setting := range strings.Split(os.Getenv(Env), ",") {
			settings = append(settings, strings.ToLower(strings.TrimSpace(setting)))
		}
	}
	return settings
}

// settings cached copy of name of experiments that are enabled (cleaned up).
var settings []string

// ResetForTesting clears the experiment flag settings, forcing reload from the Env on next use.
//
// This is for testing purposes only.
func ResetForTesting() {
	settings = nil
}
