// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

// These metrics size the flat, fixed-width buffers that a tree is laid out
// into when it is exported to tabular or binary formats. The node on which a
// metric is invoked is treated as the root of the measurement.

// TotalNumChildren reports the number of leaf units in the subtree rooted at
// n. A node that is not a container counts as one unit; a container counts
// the sum of the units of its children, so an empty container reports 0.
func (n *Node) TotalNumChildren() int {
	if !n.IsContainer() {
		return 1
	}
	var sum int
	for _, c := range n.children {
		sum += c.TotalNumChildren()
	}
	return sum
}

// MaximumNumChildrenInDeepEnd reports the number of leaf units needed to lay
// out the deepest dimension of the subtree rooted at n.
//
// At the root, the children of an Object are summed while the children of an
// Array contribute the maximum among them. Below the root, the children of
// every container are summed. Non-containers count 1.
func (n *Node) MaximumNumChildrenInDeepEnd() int { return n.deepEndChildren(0) }

func (n *Node) deepEndChildren(depth int) int {
	if !n.IsContainer() {
		return 1
	}
	var result int
	for _, c := range n.children {
		v := c.deepEndChildren(depth + 1)
		if depth == 0 && n.typ == Array {
			result = max(result, v)
		} else {
			result += v
		}
	}
	return result
}

// MaximumNumContainersInDeepEnd estimates the container fan-out of the subtree
// rooted at n. An ObjectProperty or ArrayItem reports 1. Otherwise the result
// is an accumulator starting at 1, multiplied by the sum of this metric over
// the children of n that are containers. Non-container children do not
// contribute to the sum, so a container with no container children reports 0.
func (n *Node) MaximumNumContainersInDeepEnd() int {
	if n.typ == ObjectProperty || n.typ == ArrayItem {
		return 1
	}
	result := 1
	var sum int
	for _, c := range n.children {
		if c.IsContainer() {
			sum += c.MaximumNumContainersInDeepEnd()
		}
	}
	result *= sum
	return result
}
