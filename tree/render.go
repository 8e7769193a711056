// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "strings"

// DefaultIndent is the indentation width used by String.
const DefaultIndent = 2

// RenderOptions carry the settings for rendering a tree as text.
// A zero value renders one member per line with no indentation.
type RenderOptions struct {
	// If true, omit all indentation and line breaks.
	Trim bool

	// The number of spaces per indentation level.
	IndentWidth int

	// If non-nil, decorate the tokens of the output.
	Style *Style
}

// A Style decorates the tokens of rendered output, for example with terminal
// color escapes. A nil function leaves its tokens unchanged.
type Style struct {
	Key   func(string) string // quoted object keys
	Value func(string) string // scalar values
	Punct func(string) string // brackets, colons, and commas
}

func (s *Style) key(text string) string {
	if s == nil || s.Key == nil {
		return text
	}
	return s.Key(text)
}

func (s *Style) value(text string) string {
	if s == nil || s.Value == nil {
		return text
	}
	return s.Value(text)
}

func (s *Style) punct(text string) string {
	if s == nil || s.Punct == nil {
		return text
	}
	return s.Punct(text)
}

// ToString renders the subtree rooted at n as JSON text. If trimWhitespaces
// is true the output is compact; otherwise each member is placed on its own
// line, indented by indentWidth spaces per level of nesting.
func (n *Node) ToString(trimWhitespaces bool, indentWidth int) string {
	return n.Render(RenderOptions{Trim: trimWhitespaces, IndentWidth: indentWidth})
}

// String renders n as indented JSON text with DefaultIndent.
func (n *Node) String() string { return n.ToString(false, DefaultIndent) }

// JSON renders n as compact JSON text.
func (n *Node) JSON() string { return n.ToString(true, 0) }

// Render renders the subtree rooted at n as text using the settings in opts.
func (n *Node) Render(opts RenderOptions) string {
	var sb strings.Builder
	n.render(&sb, &opts, 0)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, opts *RenderOptions, depth int) {
	style := opts.Style
	indent := func(level int) {
		if !opts.Trim {
			sb.WriteString(strings.Repeat(" ", level*opts.IndentWidth))
		}
	}

	indent(depth)
	if n.HasKey() {
		sb.WriteString(style.key(n.key.AsString(true, true)))
		sb.WriteString(style.punct(":"))
		if !opts.Trim {
			sb.WriteByte(' ')
		}
	}
	if n.value != nil {
		sb.WriteString(style.value(n.value.AsString(false, true)))
	}

	lb, rb := n.brackets()
	if n.IsContainer() {
		sb.WriteString(style.punct(lb))
		if !opts.Trim {
			sb.WriteByte('\n')
		}
	}
	for _, c := range n.children {
		c.render(sb, opts, depth+1)
	}
	if n.IsContainer() {
		indent(depth)
		sb.WriteString(style.punct(rb))
	}

	if !n.IsLast() {
		sb.WriteString(style.punct(","))
	}
	if !opts.Trim && depth > 0 {
		sb.WriteByte('\n')
	}
}

func (n *Node) brackets() (lb, rb string) {
	switch n.typ {
	case Object:
		return "{", "}"
	case Array:
		return "[", "]"
	}
	return "", ""
}
