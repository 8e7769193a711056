// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements read-only traversal over the children of a
// document tree node.
package cursor

import (
	"fmt"

	"github.com/creachadair/doctree/tree"
)

// A ChildCursor iterates forward over the direct children of a node.
//
// The children are captured when the cursor is constructed, so adding or
// removing children of the node afterward does not affect the cursor.
// Iterating a cursor does not change the NextChild position of the node.
type ChildCursor struct {
	org  *tree.Node
	kids []*tree.Node
	pos  int // index of the current child, or -1 before the first
}

// New constructs a cursor over the children of n.
func New(n *tree.Node) *ChildCursor {
	kids := make([]*tree.Node, 0, n.NumChildren())
	for _, c := range n.Children() {
		kids = append(kids, c)
	}
	return &ChildCursor{org: n, kids: kids, pos: -1}
}

// Origin returns the node whose children c traverses.
func (c *ChildCursor) Origin() *tree.Node { return c.org }

// Next advances c to the next child and reports whether one was available.
// Once Next reports false, it continues to do so until Reset is called.
func (c *ChildCursor) Next() bool {
	if c.pos < len(c.kids) {
		c.pos++
	}
	return c.pos < len(c.kids)
}

// Node returns the child under the cursor, or nil if Next has not been called
// or the children are exhausted.
func (c *ChildCursor) Node() *tree.Node {
	if c.pos < 0 || c.pos >= len(c.kids) {
		return nil
	}
	return c.kids[c.pos]
}

// Index reports the position of the current child among the children of the
// origin at the time c was constructed, or -1 before the first call to Next.
func (c *ChildCursor) Index() int { return min(c.pos, len(c.kids)) }

// Len reports the number of children c traverses.
func (c *ChildCursor) Len() int { return len(c.kids) }

// Reset rewinds c to before its first child.
func (c *ChildCursor) Reset() { c.pos = -1 }

// Path traverses a sequential path downward from n, where path elements are
// either strings (denoting child keys) or integers (denoting child indices).
// Negative indices count backward from the end (-1 is last, -2 second last).
// If the path is valid, the node reached is returned. Otherwise Path returns
// n along with an error describing the step that failed.
func Path(n *tree.Node, path ...any) (*tree.Node, error) {
	cur := n
	for i, elt := range path {
		switch t := elt.(type) {
		case string:
			next := cur.Find(t)
			if next == nil {
				return n, fmt.Errorf("step %d: key %q not found", i, t)
			}
			cur = next
		case int:
			j, ok := fixIndex(cur.NumChildren(), t)
			if !ok {
				return n, fmt.Errorf("step %d: index %d out of bounds (n=%d)", i, t, cur.NumChildren())
			}
			cur = cur.Child(j)
		default:
			return n, fmt.Errorf("step %d: invalid path element %T", i, elt)
		}
	}
	return cur, nil
}

// Collect returns the children of n for which keep reports true, in order.
// A nil keep function selects every child.
func Collect(n *tree.Node, keep func(*tree.Node) bool) []*tree.Node {
	var out []*tree.Node
	for c := New(n); c.Next(); {
		if keep == nil || keep(c.Node()) {
			out = append(out, c.Node())
		}
	}
	return out
}

func fixIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
