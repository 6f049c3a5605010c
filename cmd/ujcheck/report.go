// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/ujson"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// A reporter writes diagnostics, colorized if the output is a terminal.
type reporter struct {
	w    io.Writer
	path *color.Color
	kind *color.Color
	ok   *color.Color
}

func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:    w,
		path: color.New(color.Bold),
		kind: color.New(color.FgRed, color.Bold),
		ok:   color.New(color.FgGreen),
	}
	if useColor(w) {
		r.path.EnableColor()
		r.kind.EnableColor()
		r.ok.EnableColor()
	} else {
		r.path.DisableColor()
		r.kind.DisableColor()
		r.ok.DisableColor()
	}
	return r
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// fail reports err for the file at path. Errors from the parser or accessors
// are reported as "path:line: kind: message".
func (r *reporter) fail(path string, err error) {
	var e *ujson.Error
	if errors.As(err, &e) {
		fmt.Fprintf(r.w, "%s:%d: %s", r.path.Sprint(path), e.Line, r.kind.Sprint(e.Kind))
		if e.Message != "" {
			fmt.Fprint(r.w, ": ", e.Message)
		}
		fmt.Fprintln(r.w)
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.path.Sprint(path), r.kind.Sprint(err))
}

func (r *reporter) pass(path string) {
	fmt.Fprintf(r.w, "%s: %s\n", r.path.Sprint(path), r.ok.Sprint("ok"))
}

// fatal reports an error that ends the program.
func (r *reporter) fatal(err error) {
	var fe fileError
	if errors.As(err, &fe) {
		r.fail(fe.path, fe.err)
		return
	}
	fmt.Fprintf(r.w, "ujcheck: %s\n", r.kind.Sprint(err))
}
