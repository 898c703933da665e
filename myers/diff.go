// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package myers implements the Myers diff algorithm as an lcs.Aligner.
//
// Align finds a longest common subsequence of the same length as
// lcs.Compute, in O((N+M)·D) time and space instead of O(N·M), but it may
// choose a different one when several exist.
package myers

import (
	"slices"

	"github.com/tuxkit/diff/lcs"
)

// Sources:
// https://blog.jcoglan.com/2017/02/17/the-myers-diff-algorithm-part-3/
// https://www.codeproject.com/Articles/42279/%2FArticles%2F42279%2FInvestigating-Myers-diff-algorithm-Part-1-of-2

var _ lcs.Aligner = Align

// Align returns a longest common subsequence of the sequences in s.
func Align(s lcs.Sequences) []lcs.Pair {
	n, m := s.Lengths()
	if n == 0 || m == 0 {
		return nil
	}
	trace, offset := shortestEditSequence(s, n, m)
	return backtrack(trace, n, m, offset)
}

// backtrack walks the trace from (n, m) back to the origin and returns the
// diagonal moves, which are the matched pairs.
func backtrack(trace [][]int, x, y, offset int) []lcs.Pair {
	var pairs []lcs.Pair
	for d := len(trace) - 1; d >= 0; d-- {
		V := trace[d]
		k := x - y

		var kPrev int
		if k == -d || (k != d && V[k-1+offset] < V[k+1+offset]) {
			kPrev = k + 1
		} else {
			kPrev = k - 1
		}
		xPrev := V[kPrev+offset]
		yPrev := xPrev - kPrev

		for x > xPrev && y > yPrev {
			x--
			y--
			pairs = append(pairs, lcs.Pair{A: x, B: y})
		}
		x, y = xPrev, yPrev
	}
	slices.Reverse(pairs)
	return pairs
}

// shortestEditSequence returns the trace of the shortest edit sequence that
// converts A into B. trace[d] holds the furthest reaching x of every
// diagonal before step d.
func shortestEditSequence(s lcs.Sequences, M, N int) ([][]int, int) {
	offset := N + M
	V := make([]int, 2*(N+M)+2)
	var trace [][]int

	// Iterate through the maximum possible length of the SES (N+M).
	for d := 0; d <= N+M; d++ {
		trace = append(trace, slices.Clone(V))
		// k lines are represented by the equation y = x - k. We move in
		// increments of 2 because end points for even d are on even k lines.
		for k := -d; k <= d; k += 2 {
			// At each point, we either go down or to the right. We go down if
			// k == -d, and we go to the right if k == d. We also prioritize
			// the maximum x value, because we prefer deletions to insertions.
			var x int
			if k == -d || (k != d && V[k-1+offset] < V[k+1+offset]) {
				x = V[k+1+offset] // down
			} else {
				x = V[k-1+offset] + 1 // right
			}

			y := x - k

			// Diagonal moves while we have equal contents.
			for x < M && y < N && s.Equal(x, y) {
				x++
				y++
			}

			V[k+offset] = x

			if x >= M && y >= N {
				return trace, offset
			}
		}
	}
	return trace, offset
}
