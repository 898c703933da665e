package lcs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuxkit/diff/lcs"
)

func pairs(ps ...[2]int) []lcs.Pair {
	if len(ps) == 0 {
		return nil
	}
	out := make([]lcs.Pair, len(ps))
	for i, p := range ps {
		out[i] = lcs.Pair{A: p[0], B: p[1]}
	}
	return out
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []lcs.Pair
	}{
		{"empty", nil, nil, nil},
		{"empty a", nil, []int{1, 2}, nil},
		{"empty b", []int{1, 2}, nil, nil},
		{"equal single", []int{1}, []int{1}, pairs([2]int{0, 0})},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, pairs([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})},
		{"different single", []int{1}, []int{2}, nil},
		{"different", []int{1, 2, 3}, []int{4, 5, 6}, nil},
		{
			"common sequence in b",
			[]int{1, 2, 3}, []int{0, 0, 1, 2, 3, 0, 0},
			pairs([2]int{0, 2}, [2]int{1, 3}, [2]int{2, 4}),
		},
		{
			"common sequence in a",
			[]int{0, 0, 1, 2, 3, 0, 0}, []int{1, 2, 3},
			pairs([2]int{2, 0}, [2]int{3, 1}, [2]int{4, 2}),
		},
		{
			"common sub-sequence in b",
			[]int{1, 2, 3}, []int{0, 0, 1, 0, 2, 0, 3, 0, 0},
			pairs([2]int{0, 2}, [2]int{1, 4}, [2]int{2, 6}),
		},
		{
			"common sub-sequence in a",
			[]int{0, 0, 1, 0, 2, 0, 3, 0, 0}, []int{1, 2, 3},
			pairs([2]int{2, 0}, [2]int{4, 1}, [2]int{6, 2}),
		},
		{
			"common sub-sequence in both",
			[]int{0, 0, 1, 0, 2, 0, 3, 0, 0}, []int{9, 9, 1, 9, 2, 9, 3, 9, 9},
			pairs([2]int{2, 2}, [2]int{4, 4}, [2]int{6, 6}),
		},
		{
			"out of order",
			[]int{1, 2, 3, 4, 5}, []int{5, 4, 2, 3, 1},
			pairs([2]int{1, 2}, [2]int{2, 3}),
		},
		{
			"out of order reversed",
			[]int{5, 4, 2, 3, 1}, []int{1, 2, 3, 4, 5},
			pairs([2]int{2, 1}, [2]int{3, 2}),
		},
		{
			"complex",
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []int{2, 3, 1, 5, 6, 4, 8, 9, 7},
			pairs([2]int{1, 0}, [2]int{2, 1}, [2]int{4, 3}, [2]int{5, 4}, [2]int{7, 6}, [2]int{8, 7}),
		},
		{
			// Both [1] and [2] are longest; ties skip items of b first.
			"tie prefers b",
			[]int{1, 2}, []int{2, 1},
			pairs([2]int{0, 1}),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lcs.Align(tc.a, tc.b)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), lcs.Length(lcs.Slices(tc.a, tc.b)))
			checkAlignment(t, got, func(i, j int) bool { return tc.a[i] == tc.b[j] })
		})
	}
}

func TestComputeNoMatch(t *testing.T) {
	got := lcs.Compute(lcs.Slices([]string{"a", "b"}, []string{"c"}))
	assert.Nil(t, got)
	got = lcs.AlignFunc([]int{1}, []int{2}, func(x, y int) bool { return x == y })
	assert.Nil(t, got)
}

func TestAlignFunc(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []string{"0", "2", "3", "5"}
	got := lcs.AlignFunc(a, b, func(x int, y string) bool { return strconv.Itoa(x) == y })
	assert.Equal(t, pairs([2]int{1, 1}, [2]int{2, 2}), got)
}

func TestLines(t *testing.T) {
	a := []string{"x", "same 1", "y", "same 2"}
	b := [][]byte{[]byte("same 1"), []byte("z"), []byte("same 2")}
	s := lcs.Lines(a, b)

	na, nb := s.Lengths()
	require.Equal(t, 4, na)
	require.Equal(t, 3, nb)
	assert.True(t, s.Equal(1, 0))
	assert.False(t, s.Equal(0, 0))
	assert.Equal(t, pairs([2]int{1, 0}, [2]int{3, 2}), lcs.Compute(s))
}

func TestWindow(t *testing.T) {
	a := []string{"p", "a", "b", "c", "s"}
	b := []string{"p", "b", "x", "c", "s"}
	w := lcs.Window(lcs.Slices(a, b), 1, 4, 1, 4)

	na, nb := w.Lengths()
	require.Equal(t, 3, na)
	require.Equal(t, 3, nb)
	assert.True(t, w.Equal(1, 0)) // a[2] == b[1]
	assert.Equal(t, pairs([2]int{1, 0}, [2]int{2, 2}), lcs.Compute(w))
	assert.Equal(t, 0, w.CommonPrefixLen(0, 3, 0, 3))
	assert.Equal(t, 1, w.CommonSuffixLen(0, 3, 0, 3))
}

// checkAlignment verifies that pairs is strictly increasing in both
// components and that every pair matches.
func checkAlignment(t *testing.T, pairs []lcs.Pair, equal func(i, j int) bool) {
	t.Helper()
	for i, p := range pairs {
		if !equal(p.A, p.B) {
			t.Errorf("pair %d %v does not match", i, p)
		}
		if i > 0 && (p.A <= pairs[i-1].A || p.B <= pairs[i-1].B) {
			t.Errorf("pair %d %v does not follow %v", i, p, pairs[i-1])
		}
	}
}
