// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

// Walker performs an operation on the given Node while traversing the tree.
// Typically defines the action taken during a Walk().
type Walker interface {
	Visit(Node) error
}

// WalkerFunc adapts a function to a Walker.
type WalkerFunc func(Node) error

func (f WalkerFunc) Visit(n Node) error { return f(n) }

// Walk traverses the tree starting at `n`, recursively, depth-first, invoking `w` on each node.
// Children are visited in source order; a Mapping visits its key, then its value.
// if `w` returns non-nil error, the traversal is aborted.
func Walk(n Node, w Walker) error {
	if n == nil {
		return nil
	}
	err := w.Visit(n)
	if err != nil {
		return err
	}

	for _, c := range Children(n) {
		err := Walk(c, w)
		if err != nil {
			return err
		}
	}
	return nil
}

// WalkerWithParent performs an operation on the given Node while traversing the tree, including a reference to
//   "node"'s parent node.
//
// Typically defines the action taken during a WalkWithParent().
type WalkerWithParent interface {
	VisitWithParent(Node, Node) error
}

// WalkWithParent traverses the tree starting at `n`, recursively, depth-first, invoking `w` on each node and
//   including a reference to "node"s parent node as well.
// if `w` returns non-nil error, the traversal is aborted.
func WalkWithParent(node Node, parent Node, w WalkerWithParent) error {
	if node == nil {
		return nil
	}
	err := w.VisitWithParent(node, parent)
	if err != nil {
		return err
	}

	for _, child := range Children(node) {
		err = WalkWithParent(child, node, w)
		if err != nil {
			return err
		}
	}
	return nil
}
