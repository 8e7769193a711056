// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/creachadair/doctree"
)

// ErrUnsupportedType is reported by FromValue for Go values that have no
// document representation, such as channels and functions.
var ErrUnsupportedType = errors.New("unsupported value type")

// FromValue constructs a tree from a Go value.
//
// Structs and maps with string keys become objects, and slices and arrays
// become arrays. Strings, numbers, and Booleans become leaf members, as do
// values that implement encoding.TextMarshaler, which are rendered as strings.
// Pointers and interfaces are followed; nil pointers, interfaces, slices, and
// maps become null. Map keys are sorted.
//
// Exported struct fields are named by their "json" tag if present, and
// otherwise by their Go name. A tag name of "-" skips the field, and the
// "omitempty" option skips it when it is empty. Untagged embedded structs
// contribute their fields to the enclosing object.
func FromValue(v any) (*Node, error) {
	return fromValue(reflect.ValueOf(v), nil, false)
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// fromValue constructs a node for v. If inArray is true the node is an element
// of an array; otherwise key is its member name, or nil for the root.
func fromValue(v reflect.Value, key *doctree.Param, inArray bool) (*Node, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return leaf(key, inArray, doctree.Null()), nil
		}
		if v.Type().Implements(textMarshalerType) {
			break
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return leaf(key, inArray, doctree.Null()), nil
	}
	if v.Type().Implements(textMarshalerType) && v.CanInterface() {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, fmt.Errorf("marshal %v: %w", v.Type(), err)
		}
		return leaf(key, inArray, doctree.String(string(text))), nil
	}
	if inArray {
		key = nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return leaf(key, inArray, doctree.Bool(v.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return leaf(key, inArray, doctree.Int(v.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return leaf(key, inArray, doctree.Uint(v.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return leaf(key, inArray, doctree.Float(v.Float())), nil
	case reflect.String:
		return leaf(key, inArray, doctree.String(v.String())), nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return leaf(key, inArray, doctree.Null()), nil
		}
		arr := NewArray(key)
		for i := range v.Len() {
			c, err := fromValue(v.Index(i), nil, true)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.AddChild(c)
		}
		return arr, nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %v: %w", v.Type().Key(), ErrUnsupportedType)
		}
		if v.IsNil() {
			return leaf(key, inArray, doctree.Null()), nil
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })
		obj := NewObject(key)
		for _, mk := range keys {
			c, err := fromValue(v.MapIndex(mk), doctree.String(mk.String()), false)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", mk.String(), err)
			}
			obj.AddChild(c)
		}
		return obj, nil

	case reflect.Struct:
		obj := NewObject(key)
		if err := addFields(obj, v); err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, fmt.Errorf("kind %v: %w", v.Kind(), ErrUnsupportedType)
}

// addFields adds members to obj for the exported fields of struct v.
func addFields(obj *Node, v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		name, omitEmpty, skip := parseTag(f)
		if skip {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous && name == "" {
			ev := fv
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				if err := addFields(obj, ev); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if omitEmpty && isEmpty(fv) {
			continue
		}
		if name == "" {
			name = f.Name
		}
		c, err := fromValue(fv, doctree.String(name), false)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		obj.AddChild(c)
	}
	return nil
}

// parseTag reports the name and options from the "json" tag of f.
func parseTag(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	}
	return v.IsZero()
}

// leaf constructs a member node holding p.
func leaf(key *doctree.Param, inArray bool, p *doctree.Param) *Node {
	if inArray || key == nil {
		return New(ArrayItem, nil, nil, p, 0)
	}
	return New(ObjectProperty, nil, key, p, 0)
}
