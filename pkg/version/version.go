// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the release of the yamlast binary, set at link time.
package version

import (
	goversion "github.com/hashicorp/go-version"
)

// Version is overridden with -ldflags "-X carvel.dev/yamlast/pkg/version.Version=..."
var Version = "develop"

// Semver returns Version parsed as a semantic version, or nil for
// development builds.
func Semver() *goversion.Version {
	v, err := goversion.NewVersion(Version)
	if err != nil {
		return nil
	}
	return v
}
