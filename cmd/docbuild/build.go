// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/doctree"
	"github.com/creachadair/doctree/tree"
	"github.com/scott-cotton/cli"
)

// build constructs the document described by args.
func build(cfg *Config, args []string) (*tree.Node, error) {
	if cfg.Array {
		root := tree.NewArray(nil)
		for _, arg := range args {
			root.AddChild(tree.New(tree.ArrayItem, nil, nil, parseValue(arg), 0))
		}
		return root, nil
	}

	root := tree.NewObject(nil)
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q is not key=value", cli.ErrUsage, arg)
		}
		if err := insert(root, key, parseValue(val)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return root, nil
}

// insert adds a member for the dotted key path to root with value v.
// A later assignment to the same key replaces the earlier one.
func insert(root *tree.Node, key string, v *doctree.Param) error {
	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" || p == "[]" {
			return fmt.Errorf("invalid key %q", key)
		}
	}

	cur := root
	for _, p := range parts[:len(parts)-1] {
		next := cur.Find(p)
		if next == nil {
			next = tree.NewObject(doctree.String(p))
			cur.AddChild(next)
		} else if next.Type() != tree.Object {
			return fmt.Errorf("key %q: %q is not an object", key, p)
		}
		cur = next
	}

	last := parts[len(parts)-1]
	if name, ok := strings.CutSuffix(last, "[]"); ok {
		arr := cur.Find(name)
		if arr == nil {
			arr = tree.NewArray(doctree.String(name))
			cur.AddChild(arr)
		} else if arr.Type() != tree.Array {
			return fmt.Errorf("key %q: %q is not an array", key, name)
		}
		arr.AddChild(tree.New(tree.ArrayItem, nil, nil, v, 0))
		return nil
	}

	for i, c := range cur.Children() {
		if c.Key().Text() == last {
			if err := cur.RemoveChild(i); err != nil {
				return err
			}
			break
		}
	}
	cur.AddChild(tree.New(tree.ObjectProperty, nil, doctree.String(last), v, 0))
	return nil
}

// parseValue interprets s as a constant, a number, or a string.
func parseValue(s string) *doctree.Param {
	switch s {
	case "true", "false":
		return doctree.Bool(s == "true")
	case "null":
		return doctree.Null()
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return doctree.Int(v)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return doctree.Float(v)
	}
	return doctree.String(s)
}
