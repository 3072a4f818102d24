// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlast

// gapEnd returns where a node ending naturally at end stops when the next
// sibling starts at next. A single line break followed by indentation is
// given to the node (it ends right before next). Anything else between them
// (blank lines, comments, separators) is a gap owned by no node.
func gapEnd(src string, end, next int) int {
	if next <= end {
		return end
	}
	breaks := 0
	for i := end; i < next; i++ {
		switch src[i] {
		case '\n':
			breaks++
		case ' ', '\t', '\r':
		default:
			return end
		}
	}
	if breaks != 1 {
		return end
	}
	if src[next-1] == '\n' && next-2 >= end && src[next-2] == '\r' {
		return next - 2
	}
	return next - 1
}

// settle extends the end of n to at least end and closes its children:
// every child but the last is closed against its next sibling, the last
// child is closed against the end of n. Keys, flow collections and alias
// targets keep their own ends.
func settle(src string, n Node, end int) {
	if n == nil {
		return
	}
	b := base(n)
	b.end = max(b.end, end)

	switch typed := n.(type) {
	case *Map:
		if typed.flow {
			return
		}
		for i, mapping := range typed.Mappings {
			if i < len(typed.Mappings)-1 {
				settle(src, mapping, gapEnd(src, mapping.end, typed.Mappings[i+1].start))
			} else {
				settle(src, mapping, typed.end)
			}
		}
	case *Mapping:
		settle(src, typed.Value, typed.end)
	case *Sequence:
		if typed.flow {
			return
		}
		for i, item := range typed.Items {
			if item == nil {
				continue
			}
			if i < len(typed.Items)-1 {
				settle(src, item, gapEnd(src, item.EndPosition(), typed.entryStarts[i+1]))
			} else {
				settle(src, item, typed.end)
			}
		}
	}
}
