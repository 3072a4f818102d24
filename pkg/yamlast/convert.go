// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"fmt"

	"carvel.dev/yamlast/pkg/orderedmap"
)

// DefaultMaxConvertedNodes bounds the work of expanding aliases, which can
// otherwise grow exponentially ("billion laughs").
const DefaultMaxConvertedNodes = 1_000_000

// Converter turns a tree into plain values: *orderedmap.Map for maps,
// []interface{} for sequences and string for scalars. Missing values become
// nil. Aliases are replaced by a conversion of their target; an include is
// kept as the string "!include <path>" so that it stays visible in output.
type Converter struct {
	MaxNodes int

	converted int
}

var _ Visitor[interface{}] = &Converter{}

// AsInterface converts n with a fresh Converter using default limits.
func AsInterface(n Node) (interface{}, error) {
	return Accept[interface{}](&Converter{}, n)
}

func (c *Converter) count() error {
	limit := c.MaxNodes
	if limit <= 0 {
		limit = DefaultMaxConvertedNodes
	}
	c.converted++
	if c.converted > limit {
		return fmt.Errorf("Converting tree: expanded to more than %d nodes", limit)
	}
	return nil
}

func (c *Converter) VisitScalar(s *Scalar) (interface{}, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	return s.Value, nil
}

func (c *Converter) VisitMapping(m *Mapping) (interface{}, error) {
	return Accept[interface{}](c, m.Value)
}

func (c *Converter) VisitMap(m *Map) (interface{}, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	result := orderedmap.NewMap()
	for _, mapping := range m.Mappings {
		if mapping.Key == nil {
			continue
		}
		val, err := c.VisitMapping(mapping)
		if err != nil {
			return nil, err
		}
		result.Set(mapping.Key.Value, val)
	}
	return result, nil
}

func (c *Converter) VisitSequence(s *Sequence) (interface{}, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	result := []interface{}{}
	for _, item := range s.Items {
		val, err := Accept[interface{}](c, item)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

func (c *Converter) VisitAnchorRef(ref *AnchorRef) (interface{}, error) {
	if ref.Value == nil {
		return nil, fmt.Errorf("Converting alias %q: anchor is not defined", ref.Name)
	}
	return Accept[interface{}](c, ref.Value)
}

func (c *Converter) VisitIncludeRef(ref *IncludeRef) (interface{}, error) {
	if err := c.count(); err != nil {
		return nil, err
	}
	tag := ref.Tag()
	if tag == "" {
		tag = DefaultIncludeTag
	}
	return tag + " " + ref.Path, nil
}
