// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package diagnostics renders parse errors for humans: an IDE-parseable
"file:line:col:" location, the message, and the source lines leading to
the error with a caret under its column.
*/
package diagnostics
