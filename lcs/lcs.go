// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lcs computes a longest common subsequence of two sequences.
//
// The result is an alignment: the index pairs of the items that make up
// the subsequence, increasing in both components. When several longest
// subsequences exist, Compute reports the one found by skipping items of B
// before items of A.
package lcs

// Pair identifies an item common to both sequences: A[A] == B[B].
type Pair struct {
	A, B int
}

// An Aligner computes an alignment of the sequences in s. Compute is the
// default; see package myers for another.
type Aligner func(s Sequences) []Pair

// Align returns a longest common subsequence of a and b.
func Align[T comparable](a, b []T) []Pair {
	return Compute(Slices(a, b))
}

// AlignFunc is like Align but compares items with eq.
func AlignFunc[T1, T2 any](a []T1, b []T2, eq func(T1, T2) bool) []Pair {
	return Compute(Func(a, b, eq))
}

// Length returns the length of a longest common subsequence of the
// sequences in s.
func Length(s Sequences) int {
	na, nb := s.Lengths()
	if na == 0 || nb == 0 {
		return 0
	}
	return fill(s, na, nb).at(0, 0)
}

// Compute returns a longest common subsequence of the sequences in s using
// dynamic programming. It uses O(len(A)*len(B)) time and space.
func Compute(s Sequences) []Pair {
	na, nb := s.Lengths()
	if na == 0 || nb == 0 {
		return nil
	}
	t := fill(s, na, nb)
	if t.at(0, 0) == 0 {
		return nil
	}

	pairs := make([]Pair, 0, t.at(0, 0))
	lastA, lastB := na-1, nb-1
	a, b := 0, 0
	for a < na && b < nb {
		switch {
		case s.Equal(a, b):
			pairs = append(pairs, Pair{A: a, B: b})
			a++
			b++
		case a < lastA && b < lastB:
			// Ties skip the item of B.
			if t.at(a+1, b) > t.at(a, b+1) {
				a++
			} else {
				b++
			}
		case a < lastA:
			a++
		default:
			b++
		}
	}
	return pairs
}

// table holds, for every i and j, the length of the longest common
// subsequence of the suffixes A[i:] and B[j:], in row-major order.
type table struct {
	nb    int
	cells []int
}

func (t table) at(i, j int) int { return t.cells[i*t.nb+j] }

func fill(s Sequences, na, nb int) table {
	t := table{nb: nb, cells: make([]int, na*nb)}
	lastA, lastB := na-1, nb-1
	for a := lastA; a >= 0; a-- {
		for b := lastB; b >= 0; b-- {
			var n int
			if s.Equal(a, b) {
				n = 1
				if a < lastA && b < lastB {
					n += t.at(a+1, b+1)
				}
			} else {
				if a < lastA {
					n = t.at(a+1, b)
				}
				if b < lastB {
					n = max(n, t.at(a, b+1))
				}
			}
			t.cells[a*nb+b] = n
		}
	}
	return t
}
