// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

// NewScalar creates a plain Scalar holding value. Nodes built in memory have
// no source positions.
func NewScalar(value string) *Scalar {
	return &Scalar{Value: value, RawValue: value}
}

// NewMapping creates a Mapping of key to value. value may be nil.
func NewMapping(key *Scalar, value Node) *Mapping {
	return mappingBuilder{key: key}.build(value)
}

// NewMap creates a Map holding mappings in the given order.
func NewMap(mappings []*Mapping) *Map {
	m := &Map{Mappings: mappings}
	for _, mapping := range mappings {
		setParent(mapping, m)
	}
	return m
}

// NewSeq creates a Sequence holding items in the given order.
func NewSeq(items ...Node) *Sequence {
	seq := &Sequence{Items: items}
	for _, item := range items {
		if item != nil {
			setParent(item, seq)
		}
	}
	return seq
}

// NewAnchorRef creates an alias to name. target may be nil.
func NewAnchorRef(name string, target Node) *AnchorRef {
	return &AnchorRef{Name: name, Value: target}
}

func NewIncludeRef(path string) *IncludeRef {
	return &IncludeRef{Path: path}
}

// mappingBuilder holds the parts of a Mapping while its value is parsed.
// The Mapping itself is only created once the value is known.
type mappingBuilder struct {
	key      *Scalar
	colonEnd int
}

func (b mappingBuilder) build(value Node) *Mapping {
	m := &Mapping{Key: b.key, Value: value}
	if b.key != nil {
		m.start = b.key.start
		m.end = max(b.key.end, b.colonEnd)
		setParent(b.key, m)
	}
	if value != nil {
		m.end = max(m.end, value.EndPosition())
		setParent(value, m)
	}
	return m
}
