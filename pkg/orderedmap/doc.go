// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

yamlast converts parsed trees into these maps so that printed values keep
the key order of the source.
*/
package orderedmap
