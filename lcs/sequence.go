// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lcs

import "github.com/pgavlin/text"

// This file defines the abstract sequence over which the LCS algorithm operates.

// Sequences abstracts a pair of sequences, A and B. Items are only ever
// compared by position; neither sequence is modified.
type Sequences interface {
	Lengths() (int, int)                    // len(A), len(B)
	Equal(i, j int) bool                    // A[i] == B[j]
	CommonPrefixLen(ai, aj, bi, bj int) int // len(commonPrefix(A[ai:aj], B[bi:bj]))
	CommonSuffixLen(ai, aj, bi, bj int) int // len(commonSuffix(A[ai:aj], B[bi:bj]))
}

// Slices returns the Sequences view of two slices of comparable items.
func Slices[T comparable, S1 ~[]T, S2 ~[]T](a S1, b S2) Sequences {
	return sliceSeqs[T, S1, S2]{a: a, b: b}
}

// Func returns the Sequences view of two slices whose items are compared
// with eq. The item types of A and B may differ.
func Func[T1, T2 any, S1 ~[]T1, S2 ~[]T2](a S1, b S2, eq func(T1, T2) bool) Sequences {
	return funcSliceSeqs[T1, T2, S1, S2]{a: a, b: b, eq: eq}
}

// Lines returns the Sequences view of two slices of text lines. Lines of
// different string flavours (string, []byte) compare by content.
func Lines[S1, S2 text.Text](a []S1, b []S2) Sequences {
	return lineSeqs[S1, S2]{a: a, b: b}
}

// Window returns the view of s restricted to A[ai:aj] and B[bi:bj]. Indexes
// passed to and returned from the window are relative to ai and bi.
func Window(s Sequences, ai, aj, bi, bj int) Sequences {
	return window{s: s, ai: ai, aj: aj, bi: bi, bj: bj}
}

type sliceSeqs[T comparable, S1 ~[]T, S2 ~[]T] struct {
	a S1
	b S2
}

func (s sliceSeqs[T, S1, S2]) Lengths() (int, int)  { return len(s.a), len(s.b) }
func (s sliceSeqs[T, S1, S2]) Equal(i, j int) bool { return s.a[i] == s.b[j] }
func (s sliceSeqs[T, S1, S2]) CommonPrefixLen(ai, aj, bi, bj int) int {
	return commonPrefixLenSlices(s.a[ai:aj], s.b[bi:bj])
}
func (s sliceSeqs[T, S1, S2]) CommonSuffixLen(ai, aj, bi, bj int) int {
	return commonSuffixLenSlices(s.a[ai:aj], s.b[bi:bj])
}

type funcSliceSeqs[T1, T2 any, S1 ~[]T1, S2 ~[]T2] struct {
	a  S1
	b  S2
	eq func(T1, T2) bool
}

func (s funcSliceSeqs[T1, T2, S1, S2]) Lengths() (int, int)  { return len(s.a), len(s.b) }
func (s funcSliceSeqs[T1, T2, S1, S2]) Equal(i, j int) bool { return s.eq(s.a[i], s.b[j]) }
func (s funcSliceSeqs[T1, T2, S1, S2]) CommonPrefixLen(ai, aj, bi, bj int) int {
	return commonPrefixLenFuncSlices(s.a[ai:aj], s.b[bi:bj], s.eq)
}
func (s funcSliceSeqs[T1, T2, S1, S2]) CommonSuffixLen(ai, aj, bi, bj int) int {
	return commonSuffixLenFuncSlices(s.a[ai:aj], s.b[bi:bj], s.eq)
}

type lineSeqs[S1, S2 text.Text] struct {
	a []S1
	b []S2
}

func (s lineSeqs[S1, S2]) Lengths() (int, int)  { return len(s.a), len(s.b) }
func (s lineSeqs[S1, S2]) Equal(i, j int) bool { return equalText(s.a[i], s.b[j]) }
func (s lineSeqs[S1, S2]) CommonPrefixLen(ai, aj, bi, bj int) int {
	return commonPrefixLenLines(s.a[ai:aj], s.b[bi:bj])
}
func (s lineSeqs[S1, S2]) CommonSuffixLen(ai, aj, bi, bj int) int {
	return commonSuffixLenLines(s.a[ai:aj], s.b[bi:bj])
}

type window struct {
	s              Sequences
	ai, aj, bi, bj int
}

func (w window) Lengths() (int, int)  { return w.aj - w.ai, w.bj - w.bi }
func (w window) Equal(i, j int) bool { return w.s.Equal(w.ai+i, w.bi+j) }
func (w window) CommonPrefixLen(ai, aj, bi, bj int) int {
	return w.s.CommonPrefixLen(w.ai+ai, w.ai+aj, w.bi+bi, w.bi+bj)
}
func (w window) CommonSuffixLen(ai, aj, bi, bj int) int {
	return w.s.CommonSuffixLen(w.ai+ai, w.ai+aj, w.bi+bi, w.bi+bj)
}

// equalText compares two lines by content.
func equalText[S1, S2 text.Text](a S1, b S2) bool {
	return string(a) == string(b)
}

// commonPrefixLen* returns the length of the common prefix of a[ai:aj] and b[bi:bj].
func commonPrefixLenLines[S1, S2 text.Text](a []S1, b []S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && equalText(a[i], b[i]) {
		i++
	}
	return i
}
func commonPrefixLenSlices[T comparable, S1 ~[]T, S2 ~[]T](a S1, b S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
func commonPrefixLenFuncSlices[T1, T2 any, S1 ~[]T1, S2 ~[]T2](a S1, b S2, eq func(T1, T2) bool) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && eq(a[i], b[i]) {
		i++
	}
	return i
}

// commonSuffixLen* returns the length of the common suffix of a[ai:aj] and b[bi:bj].
func commonSuffixLenLines[S1, S2 text.Text](a []S1, b []S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && equalText(a[len(a)-1-i], b[len(b)-1-i]) {
		i++
	}
	return i
}
func commonSuffixLenSlices[T comparable, S1 ~[]T, S2 ~[]T](a S1, b S2) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
func commonSuffixLenFuncSlices[T1, T2 any, S1 ~[]T1, S2 ~[]T2](a S1, b S2, eq func(T1, T2) bool) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && eq(a[len(a)-1-i], b[len(b)-1-i]) {
		i++
	}
	return i
}
