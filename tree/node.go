// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines a mutable document tree of objects, arrays, and their
// members, along with structural metrics and a JSON renderer over the tree.
//
// A tree is built by constructing nodes and attaching them to their parents
// with AddChild. Each node is exclusively owned by the parent that holds it.
// Trees are not safe for concurrent mutation, and a node must not be mutated
// while its children are being iterated.
package tree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/creachadair/doctree"
)

// ErrIndexOutOfRange is reported when a child index is not valid for a node.
var ErrIndexOutOfRange = errors.New("child index out of range")

// NodeType identifies the role of a Node in the tree.
type NodeType int

const (
	Object         NodeType = iota // a collection of named members
	Array                          // a sequence of items
	ObjectProperty                 // a keyed leaf member of an object
	ArrayItem                      // a leaf member of an array
)

func (t NodeType) String() string {
	switch t {
	case Object:
		return "Object"
	case Array:
		return "Array"
	case ObjectProperty:
		return "ObjectProperty"
	case ArrayItem:
		return "ArrayItem"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// IsContainer reports whether t is Object or Array.
func (t NodeType) IsContainer() bool { return t == Object || t == Array }

// A Node is a vertex of a document tree.
type Node struct {
	typ    NodeType
	parent *Node // not owned
	key    *doctree.Param
	value  *doctree.Param
	flags  uint32

	children  []*Node
	nextChild int
}

// New constructs a node with the given type, parent, key, value, and flags.
// Either or both of key and value may be nil.
//
// The parent is recorded for navigation, but New does not attach the node to
// it; call parent.AddChild to do that.
func New(typ NodeType, parent *Node, key, value *doctree.Param, flags uint32) *Node {
	return &Node{typ: typ, parent: parent, key: key, value: value, flags: flags}
}

// Type reports the type of n.
func (n *Node) Type() NodeType { return n.typ }

// SetType changes the type of n.
func (n *Node) SetType(t NodeType) { n.typ = t }

// Parent returns the parent of n, or nil if n is a root.
func (n *Node) Parent() *Node { return n.parent }

// Key returns the key of n, or nil if n has no key.
func (n *Node) Key() *doctree.Param { return n.key }

// Value returns the value of n, or nil if n has no value.
func (n *Node) Value() *doctree.Param { return n.value }

// HasKey reports whether n has a key whose text is not empty. A node whose key
// is the empty string reports false, although Key still returns it.
func (n *Node) HasKey() bool { return n.key.AsString(false, false) != "" }

// Flags returns the flag bits of n.
func (n *Node) Flags() uint32 { return n.flags }

// SetFlags replaces the flag bits of n.
func (n *Node) SetFlags(f uint32) { n.flags = f }

// HasFlag reports whether all the bits of f are set in the flags of n.
func (n *Node) HasFlag(f uint32) bool { return n.flags&f == f }

// IsContainer reports whether n is an Object or an Array.
func (n *Node) IsContainer() bool { return n.typ.IsContainer() }

// IsValuesContainer reports whether n has at least one child and none of its
// children is a container.
func (n *Node) IsValuesContainer() bool {
	if len(n.children) == 0 {
		return false
	}
	for _, c := range n.children {
		if c.IsContainer() {
			return false
		}
	}
	return true
}

// AddChild appends c to the children of n, and makes n the parent of c.
// After this call n owns c; c must not be attached to any other node.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Add appends each of cs to the children of n, and returns n to permit
// chaining.
func (n *Node) Add(cs ...*Node) *Node {
	for _, c := range cs {
		n.AddChild(c)
	}
	return n
}

// RemoveChild discards the child of n at index i. Later children shift down
// by one position, preserving their order. The removed child is detached from
// n. RemoveChild reports an error wrapping ErrIndexOutOfRange if i is not a
// valid index.
func (n *Node) RemoveChild(i int) error {
	if i < 0 || i >= len(n.children) {
		return fmt.Errorf("remove child %d (n=%d): %w", i, len(n.children), ErrIndexOutOfRange)
	}
	old := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	old.parent = nil
	return nil
}

// Child returns the child of n at index i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// NumChildren reports the number of direct children of n.
func (n *Node) NumChildren() int { return len(n.children) }

// HasChildren reports whether n has any children.
func (n *Node) HasChildren() bool { return len(n.children) != 0 }

// NextChild returns the child of n at the position of its internal cursor and
// advances the cursor. It returns nil once the children are exhausted. The
// cursor is only rewound by ResetNextChild.
func (n *Node) NextChild() *Node {
	if n.nextChild >= len(n.children) {
		return nil
	}
	c := n.children[n.nextChild]
	n.nextChild++
	return c
}

// ResetNextChild rewinds the internal cursor used by NextChild.
func (n *Node) ResetNextChild() { n.nextChild = 0 }

// Children returns an iterator over the indices and direct children of n.
// It does not affect the cursor used by NextChild.
func (n *Node) Children() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, c := range n.children {
			if !yield(i, c) {
				return
			}
		}
	}
}

// IsLast reports whether n has no parent, or is the final child of its parent.
func (n *Node) IsLast() bool {
	if n.parent == nil {
		return true
	}
	cs := n.parent.children
	return len(cs) != 0 && cs[len(cs)-1] == n
}

// Find returns the first child of n whose key text equals key, or nil.
func (n *Node) Find(key string) *Node {
	for _, c := range n.children {
		if c.key != nil && c.key.Text() == key {
			return c
		}
	}
	return nil
}

// NewObject constructs an unattached Object node with the given key, which
// may be nil.
func NewObject(key *doctree.Param) *Node { return New(Object, nil, key, nil, 0) }

// NewArray constructs an unattached Array node with the given key, which may
// be nil.
func NewArray(key *doctree.Param) *Node { return New(Array, nil, key, nil, 0) }

// Prop constructs an unattached ObjectProperty node with the given key and
// value. The key and value must be acceptable to doctree.ToParam.
func Prop(key, value any) *Node {
	return New(ObjectProperty, nil, doctree.ToParam(key), doctree.ToParam(value), 0)
}

// Item constructs an unattached ArrayItem node with the given value, which
// must be acceptable to doctree.ToParam.
func Item(value any) *Node {
	return New(ArrayItem, nil, nil, doctree.ToParam(value), 0)
}
