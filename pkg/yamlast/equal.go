// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

// Equal compares two trees by value only: kinds, scalar values, keys and the
// order of entries. Positions, parents, errors, styles and properties are
// ignored, so a parsed tree equals the same tree built with NewMap & co.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch typedA := a.(type) {
	case *Scalar:
		return typedA.Value == b.(*Scalar).Value
	case *Mapping:
		typedB := b.(*Mapping)
		return equalKeys(typedA.Key, typedB.Key) && Equal(typedA.Value, typedB.Value)
	case *Map:
		typedB := b.(*Map)
		if len(typedA.Mappings) != len(typedB.Mappings) {
			return false
		}
		for i := range typedA.Mappings {
			if !Equal(typedA.Mappings[i], typedB.Mappings[i]) {
				return false
			}
		}
		return true
	case *Sequence:
		typedB := b.(*Sequence)
		if len(typedA.Items) != len(typedB.Items) {
			return false
		}
		for i := range typedA.Items {
			if !Equal(typedA.Items[i], typedB.Items[i]) {
				return false
			}
		}
		return true
	case *AnchorRef:
		return typedA.Name == b.(*AnchorRef).Name
	case *IncludeRef:
		return typedA.Path == b.(*IncludeRef).Path
	}
	return false
}

func equalKeys(a, b *Scalar) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}
