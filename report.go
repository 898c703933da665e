// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"io"
	"strings"

	"github.com/pgavlin/text"

	"github.com/tuxkit/diff/lines"
)

// Report pairs an edit script with the sequences it was computed from.
// Source and Result are borrowed from the caller and never modified.
type Report[T any] struct {
	Source, Result []T
	Script         Script
}

// Slices computes the differences between two slices of comparable items.
func Slices[T comparable](source, result []T) Report[T] {
	return Report[T]{Source: source, Result: result, Script: Edits(source, result)}
}

// Lines computes the differences between two lists of text lines.
func Lines[S text.Text](source, result []S) Report[S] {
	return Report[S]{Source: source, Result: result, Script: LineEdits(source, result)}
}

// Text computes the line differences between two texts. Both texts are
// normalized with lines.Split before they are compared.
func Text[S text.Text](before, after S) Report[S] {
	return Lines(lines.Split(before), lines.Split(after))
}

// Equal reports whether the two sequences have no differences.
func (r Report[T]) Equal() bool {
	return len(r.Script) == 0
}

// String returns the rendered report. See Render.
func (r Report[T]) String() string {
	var sb strings.Builder
	if err := Render(&sb, r.Script, r.Source, r.Result); err != nil {
		return "diff: " + err.Error()
	}
	return sb.String()
}

// WriteTo writes the rendered report to w.
func (r Report[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := Render(cw, r.Script, r.Source, r.Result)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
