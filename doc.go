// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package doctree implements the leaf values of an in-memory document tree
// that renders to JSON text.
//
// # Parameters
//
// A Param is a tagged scalar value: a string, integer, floating-point number,
// Boolean, or null. Params serve both as the keys of object properties and as
// the values of leaf members. Construct a Param with one of the typed
// constructors, or convert a Go value with ToParam:
//
//	k := doctree.String("name")
//	v := doctree.ToParam(25)
//
// A nil *Param denotes an absent key or value. It is distinct from a present
// empty string:
//
//	var absent *doctree.Param
//	absent.AsString(false, true)            // ""
//	doctree.String("").AsString(false, true) // `""`
//
// # Trees
//
// The tree package defines the Node type that arranges Params into objects
// and arrays, computes structural metrics over them, and renders them to
// text. The tree/cursor package provides read-only iteration and path
// navigation over the children of a node.
package doctree
