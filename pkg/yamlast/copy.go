// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

// StructureCopier builds a copy of a tree out of NewScalar, NewMapping,
// NewMap and NewSeq. The copy has the same values but no positions, errors
// or properties. Aliases and includes are not copied.
type StructureCopier struct {
	NotImplementedVisitor[Node]
}

var _ Visitor[Node] = StructureCopier{}

func (c StructureCopier) VisitScalar(s *Scalar) (Node, error) {
	return NewScalar(s.Value), nil
}

func (c StructureCopier) VisitMapping(m *Mapping) (Node, error) {
	var key *Scalar
	if m.Key != nil {
		key = NewScalar(m.Key.Value)
	}
	value, err := Accept[Node](c, m.Value)
	if err != nil {
		return nil, err
	}
	return NewMapping(key, value), nil
}

func (c StructureCopier) VisitSequence(s *Sequence) (Node, error) {
	var items []Node
	for _, item := range s.Items {
		copied, err := Accept[Node](c, item)
		if err != nil {
			return nil, err
		}
		items = append(items, copied)
	}
	return NewSeq(items...), nil
}

func (c StructureCopier) VisitMap(m *Map) (Node, error) {
	var mappings []*Mapping
	for _, mapping := range m.Mappings {
		copied, err := c.VisitMapping(mapping)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, copied.(*Mapping))
	}
	return NewMap(mappings), nil
}

// CopyStructure returns the value-only copy of n made by StructureCopier.
func CopyStructure(n Node) (Node, error) {
	return Accept[Node](StructureCopier{}, n)
}
