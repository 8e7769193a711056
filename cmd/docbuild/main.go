// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program docbuild constructs a JSON document from key=value arguments and
// writes it to standard output.
//
// Usage:
//
//	docbuild [opts] key=value ...
//
// Dotted keys create nested objects, and a key ending in "[]" appends to an
// array:
//
//	docbuild name=demo server.port=8080 tags[]=a tags[]=b
//
// Values are typed: true, false, and null are constants, numeric text is a
// number, and anything else is a string. With -a, each argument is a value
// and the result is an array.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/doctree/tree"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// Config holds the settings for the docbuild command.
type Config struct {
	Array   bool `cli:"name=a desc='build an array of the argument values'"`
	Compact bool `cli:"name=c desc='write compact output'"`
	Indent  int  `cli:"name=indent desc='spaces per level of indentation (default 2)'"`
	Color   bool `cli:"name=color desc='write with color'"`
	NoColor bool `cli:"name=no-color desc='never write with color'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{Indent: tree.DefaultIndent}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "docbuild").
		WithSynopsis("docbuild [opts] key=value ...").
		WithDescription("docbuild builds a JSON document from its arguments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: invalid indent %d", cli.ErrUsage, cfg.Indent)
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are exclusive", cli.ErrUsage)
	}
	doc, err := build(cfg, args)
	if err != nil {
		return err
	}

	var w io.Writer = cc.Out
	opts := tree.RenderOptions{Trim: cfg.Compact, IndentWidth: cfg.Indent}
	if cfg.Color || (!cfg.NoColor && isTerminal(w)) {
		color.NoColor = false
		opts.Style = colorStyle()
	}
	if _, err := fmt.Fprintln(w, doc.Render(opts)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// colorStyle returns a style that renders keys, values, and punctuation in
// distinct terminal colors.
func colorStyle() *tree.Style {
	sprint := func(c *color.Color) func(string) string {
		return func(s string) string { return c.Sprint(s) }
	}
	return &tree.Style{
		Key:   sprint(color.RGB(196, 96, 16)),
		Value: sprint(color.RGB(8, 196, 16)),
		Punct: sprint(color.RGB(255, 0, 196)),
	}
}
