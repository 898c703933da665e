// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff computes the differences between two sequences of items,
// typically lines of text, as a run-length edit script.
//
// A Script is a list of Output, Delete and Insert runs. Walking the source
// and result sequences with independent cursors, Output advances both,
// Delete advances the source and Insert advances the result. Scripts
// produced by this package are canonical: no run is empty, no two
// adjacent runs share an operation, and a Delete always precedes an
// Insert at the same position.
package diff

import (
	"fmt"
	"strings"
)

// Op is the operation of an Edit.
type Op uint8

const (
	Output Op = iota + 1 // items common to both sequences
	Delete               // items only in the source
	Insert               // items only in the result
)

func (op Op) String() string {
	switch op {
	case Output:
		return "Output"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Edit is a run of Count items sharing the same operation.
type Edit struct {
	Op    Op
	Count int
}

func (e Edit) String() string {
	return fmt.Sprintf("%v(%d)", e.Op, e.Count)
}

// Script is an ordered list of edits that turns a source sequence into a
// result sequence. The empty script means the sequences are equal.
type Script []Edit

func (s Script) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Counts returns the number of items that are output, deleted and
// inserted by s.
func (s Script) Counts() (output, deleted, inserted int) {
	for _, e := range s {
		switch e.Op {
		case Output:
			output += e.Count
		case Delete:
			deleted += e.Count
		case Insert:
			inserted += e.Count
		}
	}
	return
}

// Validate reports whether script is in canonical form and covers a
// source of sourceLen items and a result of resultLen items exactly. An
// empty script stands for equal sequences and covers any pair of equal
// lengths.
func Validate(script Script, sourceLen, resultLen int) error {
	if len(script) == 0 {
		if sourceLen != resultLen {
			return fmt.Errorf("empty diff for %d source and %d result items", sourceLen, resultLen)
		}
		return nil
	}
	var src, dst int
	for i, e := range script {
		if e.Count <= 0 {
			return fmt.Errorf("diff has empty edit %v at %d", e, i)
		}
		switch e.Op {
		case Output:
			src += e.Count
			dst += e.Count
		case Delete:
			src += e.Count
		case Insert:
			dst += e.Count
		default:
			return fmt.Errorf("diff has unknown edit %v at %d", e, i)
		}
		if i > 0 {
			prev := script[i-1].Op
			if prev == e.Op {
				return fmt.Errorf("diff has adjacent %v edits at %d", e.Op, i)
			}
			if prev == Insert && e.Op == Delete {
				return fmt.Errorf("diff has Insert before Delete at %d", i)
			}
		}
	}
	if src != sourceLen {
		return fmt.Errorf("diff covers %d source items, want %d", src, sourceLen)
	}
	if dst != resultLen {
		return fmt.Errorf("diff covers %d result items, want %d", dst, resultLen)
	}
	return nil
}

// Apply replays script over source, taking inserted items from result,
// and returns the reconstructed result sequence.
//
// Apply returns an error if script is not valid for the lengths of
// source and result. An empty script yields a copy of source.
func Apply[T any](script Script, source, result []T) ([]T, error) {
	if err := Validate(script, len(source), len(result)); err != nil {
		return nil, err
	}
	if len(script) == 0 {
		return append([]T(nil), source...), nil
	}

	out := make([]T, 0, len(result))
	var src, dst int
	for _, e := range script {
		switch e.Op {
		case Output:
			out = append(out, source[src:src+e.Count]...)
			src += e.Count
			dst += e.Count
		case Delete:
			src += e.Count
		case Insert:
			out = append(out, result[dst:dst+e.Count]...)
			dst += e.Count
		}
	}

	if len(out) != len(result) {
		panic("wrong size")
	}

	return out, nil
}
