// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file),
a byte offset into that source and the line and column the offset falls on.

Positions are what parse errors and node ranges are reported with. It is often
more useful to share the actual source line as well, so Position also carries
a cached copy of the source line at the Position.

Not all Positions point within a source (e.g. nodes built in memory). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
