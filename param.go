// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package doctree

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the type of value held by a Param.
type Kind int

const (
	NullKind    Kind = iota // the null constant
	BoolKind                // true or false
	IntegerKind             // an integer value
	NumberKind              // a floating-point value
	StringKind              // a string value
)

var kindName = [...]string{
	NullKind:    "Null",
	BoolKind:    "Bool",
	IntegerKind: "Integer",
	NumberKind:  "Number",
	StringKind:  "String",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindName) {
		return kindName[k]
	}
	return "<unknown kind>"
}

// A Param is a scalar document value. A nil *Param is valid and denotes an
// absent value; all methods of Param accept a nil receiver.
type Param struct {
	kind Kind

	// For strings, the unescaped content. For all other kinds, the canonical
	// literal text of the value.
	text string
}

// String constructs a string Param.
func String(s string) *Param { return &Param{kind: StringKind, text: s} }

// Int constructs an integer Param.
func Int(v int64) *Param { return &Param{kind: IntegerKind, text: strconv.FormatInt(v, 10)} }

// Uint constructs an integer Param from an unsigned value.
func Uint(v uint64) *Param { return &Param{kind: IntegerKind, text: strconv.FormatUint(v, 10)} }

// Float constructs a floating-point Param. Since JSON has no representation
// for them, NaN and infinities are converted to null.
func Float(v float64) *Param {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return &Param{kind: NumberKind, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool constructs a Boolean Param.
func Bool(v bool) *Param { return &Param{kind: BoolKind, text: strconv.FormatBool(v)} }

// Null constructs a null Param.
func Null() *Param { return &Param{kind: NullKind, text: "null"} }

// ToParam converts a string, integer, float, bool, nil, or *Param into a
// *Param. It panics if v does not have one of those types.
func ToParam(v any) *Param {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Param:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Uint(uint64(t))
	case uint16:
		return Uint(uint64(t))
	case uint32:
		return Uint(uint64(t))
	case uint64:
		return Uint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	default:
		panic(fmt.Sprintf("unsupported parameter type %T", v))
	}
}

// IsAbsent reports whether p is nil.
func (p *Param) IsAbsent() bool { return p == nil }

// Kind reports the kind of value held by p. An absent Param reports NullKind.
func (p *Param) Kind() Kind {
	if p == nil {
		return NullKind
	}
	return p.kind
}

// Text returns the unquoted text of p. For strings this is the string itself;
// for other kinds it is the literal form of the value.
func (p *Param) Text() string {
	if p == nil {
		return ""
	}
	return p.text
}

// AsString renders p as text. If quoteStrings is true, a string value is
// encoded as a JSON string literal. If quoteNumbers is true, a number,
// Boolean, or null value is wrapped in double quotation marks. An absent
// Param renders as the empty string.
func (p *Param) AsString(quoteNumbers, quoteStrings bool) string {
	switch {
	case p == nil:
		return ""
	case p.kind == StringKind:
		if quoteStrings {
			return Quote(p.text)
		}
		return p.text
	case quoteNumbers:
		return `"` + p.text + `"`
	default:
		return p.text
	}
}

// Int64 returns the value of an integer Param. It panics if p is not an
// integer or does not fit in an int64.
func (p *Param) Int64() int64 {
	if p.Kind() != IntegerKind {
		panic(fmt.Sprintf("parameter kind is %v, not Integer", p.Kind()))
	}
	v, err := strconv.ParseInt(p.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of a numeric Param. It panics if p is not an
// integer or number.
func (p *Param) Float64() float64 {
	if k := p.Kind(); k != IntegerKind && k != NumberKind {
		panic(fmt.Sprintf("parameter kind is %v, not numeric", k))
	}
	v, err := strconv.ParseFloat(p.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Bool returns the value of a Boolean Param. It panics if p is not a Boolean.
func (p *Param) Bool() bool {
	if p.Kind() != BoolKind {
		panic(fmt.Sprintf("parameter kind is %v, not Bool", p.Kind()))
	}
	return p.text == "true"
}

// String returns a human-readable description of p.
func (p *Param) String() string {
	if p == nil {
		return "Param(absent)"
	}
	return fmt.Sprintf("Param(%v %s)", p.kind, p.AsString(false, true))
}
