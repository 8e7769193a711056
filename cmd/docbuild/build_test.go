// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"testing"

	"github.com/creachadair/doctree"
	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		kind  doctree.Kind
		text  string
	}{
		{"true", doctree.BoolKind, "true"},
		{"false", doctree.BoolKind, "false"},
		{"null", doctree.NullKind, "null"},
		{"12", doctree.IntegerKind, "12"},
		{"-3", doctree.IntegerKind, "-3"},
		{"2.5", doctree.NumberKind, "2.5"},
		{"NaN", doctree.StringKind, "NaN"},
		{"Inf", doctree.StringKind, "Inf"},
		{"", doctree.StringKind, ""},
		{"hello world", doctree.StringKind, "hello world"},
	}
	for _, tc := range tests {
		got := parseValue(tc.input)
		if got.Kind() != tc.kind || got.Text() != tc.text {
			t.Errorf("parseValue(%q): got %v, want %v %q", tc.input, got, tc.kind, tc.text)
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		args []string
		want string
	}{
		{"Empty", Config{}, nil, `{}`},
		{"EmptyArray", Config{Array: true}, nil, `[]`},
		{"Flat", Config{}, []string{"a=1", "b=x", "c=true"}, `{"a":1,"b":"x","c":true}`},
		{"Array", Config{Array: true}, []string{"1", "x", "null"}, `[1,"x",null]`},
		{"Nested", Config{}, []string{"server.host=h", "server.port=80", "name=n"},
			`{"server":{"host":"h","port":80},"name":"n"}`},
		{"Append", Config{}, []string{"tags[]=a", "x=1", "tags[]=b"},
			`{"tags":["a","b"],"x":1}`},
		{"Replace", Config{}, []string{"a=1", "b=2", "a=3"}, `{"b":2,"a":3}`},
		{"EqualsInValue", Config{}, []string{"q=x=y"}, `{"q":"x=y"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := build(&tc.cfg, tc.args)
			if err != nil {
				t.Fatalf("build %q: unexpected error: %v", tc.args, err)
			}
			if diff := cmp.Diff(doc.JSON(), tc.want); diff != "" {
				t.Errorf("build %q (-got, +want):\n%s", tc.args, diff)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NoEquals", []string{"plain"}},
		{"EmptyKey", []string{"=1"}},
		{"EmptySegment", []string{"a..b=1"}},
		{"NotObject", []string{"a=1", "a.b=2"}},
		{"NotArray", []string{"a=1", "a[]=2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := build(&Config{}, tc.args)
			if !errors.Is(err, cli.ErrUsage) {
				t.Fatalf("build %q: got (%v, %v), want usage error", tc.args, doc, err)
			}
			t.Logf("Got expected error: %v", err)
		})
	}
}

func TestColorStyle(t *testing.T) {
	s := colorStyle()
	if s.Key == nil || s.Value == nil || s.Punct == nil {
		t.Fatal("Color style is missing token functions")
	}
}
