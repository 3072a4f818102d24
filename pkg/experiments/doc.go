// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package experiments provides a global "Feature Flag" facility for
circuit-breaking pre-GA code.

Settings are read once from the environment variable experiments.Env and
are fixed afterwards.
*/
package experiments
