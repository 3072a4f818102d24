// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"errors"
	"fmt"
	"strings"

	"carvel.dev/yamlast/pkg/filepos"
)

// ErrNotImplemented is returned by visitors for node kinds they do not handle.
var ErrNotImplemented = errors.New("not implemented")

// ParseError is a problem found while parsing. Most are recovered from and
// only recorded; Fatal ones stop parsing of the rest of their document.
type ParseError struct {
	Message string
	// Offset into the source where the problem was found.
	Offset   int
	Position *filepos.Position

	Warning bool
	Fatal   bool
}

func (e *ParseError) Error() string {
	var prefix string
	if e.Warning {
		prefix = "warning: "
	}
	if e.Position.IsKnown() {
		return fmt.Sprintf("%s%s (%s)", prefix, e.Message, e.Position.AsCompactString())
	}
	return fmt.Sprintf("%s%s (offset %d)", prefix, e.Message, e.Offset)
}

// ErrorList is the error returned when one or more errors make a document unusable.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	var msgs []string
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap allows errors.As to find individual ParseErrors.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, err := range l {
		errs[i] = err
	}
	return errs
}
