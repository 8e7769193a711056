// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package doctree_test

import (
	"math"
	"testing"

	"github.com/creachadair/doctree"
	"github.com/creachadair/mds/mtest"
)

func TestAsString(t *testing.T) {
	tests := []struct {
		name  string
		input *doctree.Param
		plain string // quoteNumbers=false, quoteStrings=false
		json  string // quoteNumbers=false, quoteStrings=true
		all   string // quoteNumbers=true, quoteStrings=true
	}{
		{"Absent", nil, "", "", ""},
		{"EmptyString", doctree.String(""), "", `""`, `""`},
		{"String", doctree.String(`say "hi"`), `say "hi"`, `"say \"hi\""`, `"say \"hi\""`},
		{"Int", doctree.Int(-25), "-25", "-25", `"-25"`},
		{"Uint", doctree.Uint(math.MaxUint64), "18446744073709551615", "18446744073709551615", `"18446744073709551615"`},
		{"Float", doctree.Float(1.5), "1.5", "1.5", `"1.5"`},
		{"FloatExp", doctree.Float(1e21), "1e+21", "1e+21", `"1e+21"`},
		{"NaN", doctree.Float(math.NaN()), "null", "null", `"null"`},
		{"True", doctree.Bool(true), "true", "true", `"true"`},
		{"False", doctree.Bool(false), "false", "false", `"false"`},
		{"Null", doctree.Null(), "null", "null", `"null"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.input.AsString(false, false); got != tc.plain {
				t.Errorf("AsString(false, false): got %#q, want %#q", got, tc.plain)
			}
			if got := tc.input.AsString(false, true); got != tc.json {
				t.Errorf("AsString(false, true): got %#q, want %#q", got, tc.json)
			}
			if got := tc.input.AsString(true, true); got != tc.all {
				t.Errorf("AsString(true, true): got %#q, want %#q", got, tc.all)
			}
		})
	}
}

func TestAbsentIsNotEmpty(t *testing.T) {
	var absent *doctree.Param
	empty := doctree.String("")
	if !absent.IsAbsent() {
		t.Error("nil param is not absent")
	}
	if empty.IsAbsent() {
		t.Error("empty string param is absent")
	}
	if absent.AsString(false, true) == empty.AsString(false, true) {
		t.Errorf("absent and empty render the same: %#q", empty.AsString(false, true))
	}
}

func TestToParam(t *testing.T) {
	tests := []struct {
		input any
		kind  doctree.Kind
		text  string
	}{
		{nil, doctree.NullKind, "null"},
		{"fuzzy", doctree.StringKind, "fuzzy"},
		{true, doctree.BoolKind, "true"},
		{int8(-3), doctree.IntegerKind, "-3"},
		{uint16(7), doctree.IntegerKind, "7"},
		{25, doctree.IntegerKind, "25"},
		{float32(0.5), doctree.NumberKind, "0.5"},
		{3.25, doctree.NumberKind, "3.25"},
		{doctree.String("x"), doctree.StringKind, "x"},
	}
	for _, tc := range tests {
		got := doctree.ToParam(tc.input)
		if got.Kind() != tc.kind || got.Text() != tc.text {
			t.Errorf("ToParam(%#v): got %v, want %v %q", tc.input, got, tc.kind, tc.text)
		}
	}
	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { doctree.ToParam([]bool{true}) })
		mtest.MustPanic(t, func() { doctree.ToParam(func() {}) })
		mtest.MustPanic(t, func() { doctree.ToParam(make(chan struct{})) })
	})
}

func TestAccessors(t *testing.T) {
	if got := doctree.Int(12).Int64(); got != 12 {
		t.Errorf("Int64: got %d, want 12", got)
	}
	if got := doctree.Int(12).Float64(); got != 12 {
		t.Errorf("Float64 of integer: got %v, want 12", got)
	}
	if got := doctree.Float(2.5).Float64(); got != 2.5 {
		t.Errorf("Float64: got %v, want 2.5", got)
	}
	if !doctree.Bool(true).Bool() {
		t.Error("Bool(true).Bool() is false")
	}
	mtest.MustPanic(t, func() { doctree.String("1").Int64() })
	mtest.MustPanic(t, func() { doctree.Null().Bool() })
	mtest.MustPanic(t, func() { doctree.Bool(false).Float64() })
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"a b", `"a b"`},
		{"x\ny", `"x\ny"`},
		{`"`, `"\""`},
	}
	for _, tc := range tests {
		if got := doctree.Quote(tc.input); got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}
