// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

func (n *node) StartPosition() int    { return n.start }
func (n *node) EndPosition() int      { return n.end }
func (n *node) Parent() Node          { return n.parent }
func (n *node) Errors() []*ParseError { return n.errs }
func (n *node) Anchor() string        { return n.anchor }
func (n *node) Tag() string           { return n.tag }

func (n *node) addError(err *ParseError) { n.errs = append(n.errs, err) }

func (*Scalar) Kind() Kind     { return KindScalar }
func (*Mapping) Kind() Kind    { return KindMapping }
func (*Map) Kind() Kind        { return KindMap }
func (*Sequence) Kind() Kind   { return KindSequence }
func (*AnchorRef) Kind() Kind  { return KindAnchorRef }
func (*IncludeRef) Kind() Kind { return KindIncludeRef }

func (*Scalar) sealed()     {}
func (*Mapping) sealed()    {}
func (*Map) sealed()        {}
func (*Sequence) sealed()   {}
func (*AnchorRef) sealed()  {}
func (*IncludeRef) sealed() {}

// Flow reports whether the map was written in flow style ("{a: b}").
func (m *Map) Flow() bool { return m.flow }

// Flow reports whether the sequence was written in flow style ("[a, b]").
func (s *Sequence) Flow() bool { return s.flow }

// EntryStart returns the offset of the "-" indicator of the i-th item of a
// block sequence, or the item's start in a flow sequence.
func (s *Sequence) EntryStart(i int) int {
	if i < len(s.entryStarts) {
		return s.entryStarts[i]
	}
	if s.Items[i] != nil {
		return s.Items[i].StartPosition()
	}
	return s.start
}

// Get returns the value of the first mapping whose key is equal to key.
func (m *Map) Get(key string) (Node, bool) {
	for _, mapping := range m.Mappings {
		if mapping.Key != nil && mapping.Key.Value == key {
			return mapping.Value, true
		}
	}
	return nil, false
}

// Children returns the nodes owned by n in source order. Missing values
// are skipped. The target of an AnchorRef is not a child.
func Children(n Node) []Node {
	var result []Node
	switch typed := n.(type) {
	case *Map:
		for _, mapping := range typed.Mappings {
			result = append(result, mapping)
		}
	case *Mapping:
		if typed.Key != nil {
			result = append(result, typed.Key)
		}
		if typed.Value != nil {
			result = append(result, typed.Value)
		}
	case *Sequence:
		for _, item := range typed.Items {
			if item != nil {
				result = append(result, item)
			}
		}
	}
	return result
}

func setParent(child, parent Node) {
	if b := base(child); b != nil {
		b.parent = parent
	}
}

// base exposes the shared fields of a node for in-package bookkeeping.
func base(n Node) *node {
	switch typed := n.(type) {
	case *Scalar:
		return &typed.node
	case *Mapping:
		return &typed.node
	case *Map:
		return &typed.node
	case *Sequence:
		return &typed.node
	case *AnchorRef:
		return &typed.node
	case *IncludeRef:
		return &typed.node
	}
	return nil
}
