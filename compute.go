// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"github.com/pgavlin/text"

	"github.com/tuxkit/diff/lcs"
)

// Edits computes the edit script that turns source into result.
func Edits[T comparable](source, result []T) Script {
	return Compute(lcs.Slices(source, result), nil)
}

// EditsFunc is like Edits but compares items with eq.
func EditsFunc[T1, T2 any](source []T1, result []T2, eq func(T1, T2) bool) Script {
	return Compute(lcs.Func(source, result, eq), nil)
}

// LineEdits computes the edit script between two lists of text lines,
// which may be of different string flavours.
func LineEdits[S1, S2 text.Text](source []S1, result []S2) Script {
	return Compute(lcs.Lines(source, result), nil)
}

// Compute computes the edit script that turns A into B for the sequences
// in s, using align to match the items between the common prefix and
// suffix. A nil align selects lcs.Compute.
func Compute(s lcs.Sequences, align lcs.Aligner) Script {
	if align == nil {
		align = lcs.Compute
	}
	na, nb := s.Lengths()

	prefix := s.CommonPrefixLen(0, na, 0, nb)
	if prefix == na && prefix == nb {
		return nil
	}
	suffix := s.CommonSuffixLen(prefix, na, prefix, nb)

	// The middle never starts or ends with a match, so the prefix and
	// suffix runs cannot touch an interior Output.
	ma, mb := na-prefix-suffix, nb-prefix-suffix
	pairs := align(lcs.Window(s, prefix, na-suffix, prefix, nb-suffix))

	var b builder
	if prefix > 0 {
		b.push(Output, prefix)
	}
	var a, r int
	for _, p := range pairs {
		b.push(Delete, p.A-a)
		b.push(Insert, p.B-r)
		b.output()
		a, r = p.A+1, p.B+1
	}
	b.push(Delete, ma-a)
	b.push(Insert, mb-r)
	if suffix > 0 {
		b.script = append(b.script, Edit{Op: Output, Count: suffix})
	}
	return b.script
}

type builder struct {
	script Script
}

// push appends a run of n items, ignoring empty runs.
func (b *builder) push(op Op, n int) {
	if n > 0 {
		b.script = append(b.script, Edit{Op: op, Count: n})
	}
}

// output records one matched item, extending the last run if it is an
// Output.
func (b *builder) output() {
	if n := len(b.script); n > 0 && b.script[n-1].Op == Output {
		b.script[n-1].Count++
		return
	}
	b.script = append(b.script, Edit{Op: Output, Count: 1})
}
