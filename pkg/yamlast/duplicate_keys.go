// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"fmt"

	"carvel.dev/yamlast/pkg/orderedmap"
)

// DuplicateKey is a key written more than once in the same Map.
type DuplicateKey struct {
	Key       string
	First     *Scalar
	Duplicate *Scalar
}

func (d DuplicateKey) Error() string {
	return fmt.Sprintf("duplicated mapping key %q (first defined at offset %d)", d.Key, d.First.StartPosition())
}

// DuplicateKeys returns every repeated key found in the maps under n, in
// source order. The parser keeps duplicates; this is an opt-in check.
func DuplicateKeys(n Node) []DuplicateKey {
	checker := &duplicateKeysChecker{}
	_, err := Accept[struct{}](checker, n)
	if err != nil {
		panic(fmt.Sprintf("Unexpected error checking duplicate keys: %s", err))
	}
	return checker.found
}

type duplicateKeysChecker struct {
	found []DuplicateKey
}

var _ Visitor[struct{}] = &duplicateKeysChecker{}

func (c *duplicateKeysChecker) VisitMap(m *Map) (struct{}, error) {
	seen := orderedmap.NewMap()
	for _, mapping := range m.Mappings {
		if mapping.Key != nil {
			if first, found := seen.Get(mapping.Key.Value); found {
				c.found = append(c.found, DuplicateKey{mapping.Key.Value, first.(*Scalar), mapping.Key})
			} else {
				seen.Set(mapping.Key.Value, mapping.Key)
			}
		}
		if _, err := c.VisitMapping(mapping); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, nil
}

func (c *duplicateKeysChecker) VisitMapping(m *Mapping) (struct{}, error) {
	return Accept[struct{}](c, m.Value)
}

func (c *duplicateKeysChecker) VisitSequence(s *Sequence) (struct{}, error) {
	for _, item := range s.Items {
		if _, err := Accept[struct{}](c, item); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, nil
}

func (c *duplicateKeysChecker) VisitScalar(*Scalar) (struct{}, error) { return struct{}{}, nil }

// Aliased content is checked where its anchor is defined.
func (c *duplicateKeysChecker) VisitAnchorRef(*AnchorRef) (struct{}, error) { return struct{}{}, nil }

func (c *duplicateKeysChecker) VisitIncludeRef(*IncludeRef) (struct{}, error) { return struct{}{}, nil }
