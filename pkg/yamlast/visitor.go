// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import "fmt"

// Visitor has one method per kind of Node. Accept picks the method matching
// a node; implementations call Accept on children to recurse.
type Visitor[T any] interface {
	VisitScalar(*Scalar) (T, error)
	VisitMapping(*Mapping) (T, error)
	VisitSequence(*Sequence) (T, error)
	VisitMap(*Map) (T, error)
	VisitAnchorRef(*AnchorRef) (T, error)
	VisitIncludeRef(*IncludeRef) (T, error)
}

// Accept dispatches n to the method of v for its kind.
// A nil node (e.g. a missing mapping value) yields the zero value of T.
func Accept[T any](v Visitor[T], n Node) (T, error) {
	switch typed := n.(type) {
	case nil:
		var zero T
		return zero, nil
	case *Scalar:
		return v.VisitScalar(typed)
	case *Mapping:
		return v.VisitMapping(typed)
	case *Sequence:
		return v.VisitSequence(typed)
	case *Map:
		return v.VisitMap(typed)
	case *AnchorRef:
		return v.VisitAnchorRef(typed)
	case *IncludeRef:
		return v.VisitIncludeRef(typed)
	default:
		panic(fmt.Sprintf("Unknown node type %T", n))
	}
}

// NotImplementedVisitor can be embedded by visitors that do not handle
// aliases or includes. Expanding those is up to the caller, so visiting one
// fails with ErrNotImplemented instead of being skipped silently.
type NotImplementedVisitor[T any] struct{}

func (NotImplementedVisitor[T]) VisitAnchorRef(ref *AnchorRef) (T, error) {
	var zero T
	return zero, fmt.Errorf("Visiting alias %q: %w", ref.Name, ErrNotImplemented)
}

func (NotImplementedVisitor[T]) VisitIncludeRef(ref *IncludeRef) (T, error) {
	var zero T
	return zero, fmt.Errorf("Visiting include of %q: %w", ref.Path, ErrNotImplemented)
}
