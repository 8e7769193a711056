// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package doctree

import (
	"github.com/creachadair/doctree/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	if !escape.NeedsEscape(mem.S(src)) {
		return `"` + src + `"`
	}
	return string(escape.AppendQuoted(make([]byte, 0, len(src)+8), mem.S(src)))
}
