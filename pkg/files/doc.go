// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files resolves the -f arguments of the commands into Files: local
paths, directories (walked for ".yml" and ".yaml" files), stdin ("-") and
HTTP URLs.

Local files are read again on every call to Bytes so that "watch" sees edits;
stdin and URLs are read once.
*/
package files
