// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

import (
	"fmt"
	"strings"
)

// NodeAt returns the innermost node under root whose range contains offset.
func NodeAt(root Node, offset int) Node {
	if root == nil || offset < root.StartPosition() || offset >= root.EndPosition() {
		return nil
	}
	for _, child := range Children(root) {
		if found := NodeAt(child, offset); found != nil {
			return found
		}
	}
	return root
}

// Path describes where n sits in its tree, e.g. "servers[1].url".
// It follows parent references up to the root.
func Path(n Node) string {
	var segments []string
	for n != nil {
		parent := n.Parent()
		switch typed := parent.(type) {
		case *Mapping:
			if typed.Key != nil && Node(typed.Key) != n {
				segments = append(segments, typed.Key.Value)
			}
		case *Sequence:
			for i, item := range typed.Items {
				if item == n {
					segments = append(segments, fmt.Sprintf("[%d]", i))
					break
				}
			}
		}
		n = parent
	}

	var out strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		if out.Len() > 0 && !strings.HasPrefix(segments[i], "[") {
			out.WriteByte('.')
		}
		out.WriteString(segments[i])
	}
	return out.String()
}
