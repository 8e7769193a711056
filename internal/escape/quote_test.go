// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/doctree/internal/escape"
	"go4.org/mem"
)

func TestAppendQuoted(t *testing.T) {
	tests := []struct {
		input, want string
		escape      bool
	}{
		{"", `""`, false},
		{"plain text", `"plain text"`, false},
		{`a "quoted" word`, `"a \"quoted\" word"`, true},
		{`back\slash`, `"back\\slash"`, true},
		{"tab\there\n", `"tab\there\n"`, true},
		{"\x00\x1f", `"\u0000\u001f"`, true},
		{"café", `"café"`, true},
		{"sep\u2028", `"sep\u2028"`, true},
		{"bad\xffbyte", `"bad\ufffdbyte"`, true},
	}
	for _, tc := range tests {
		src := mem.S(tc.input)
		if got := escape.NeedsEscape(src); got != tc.escape {
			t.Errorf("NeedsEscape(%q): got %v, want %v", tc.input, got, tc.escape)
		}
		got := string(escape.AppendQuoted([]byte("x:"), src))
		if want := "x:" + tc.want; got != want {
			t.Errorf("AppendQuoted(%q): got %#q, want %#q", tc.input, got, want)
		}
	}
}
