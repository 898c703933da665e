package diff_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuxkit/diff"
	"github.com/tuxkit/diff/difftest"
)

func TestEdits(t *testing.T) {
	difftest.DiffTest(t, diff.Edits[string])
}

func TestLineEditsCases(t *testing.T) {
	difftest.DiffTest(t, func(source, result []string) diff.Script {
		return diff.LineEdits(source, result)
	})
}

func TestEditsEmpty(t *testing.T) {
	assert.Nil(t, diff.Edits[string](nil, nil))
	assert.Nil(t, diff.Edits([]int{}, []int{}))
	assert.True(t, diff.Slices([]string{}, nil).Equal())
}

func TestEditsFunc(t *testing.T) {
	script := diff.EditsFunc([]string{"A", "b"}, []string{"a", "B", "c"}, strings.EqualFold)
	assert.Equal(t, diff.Script{{Op: diff.Output, Count: 2}, {Op: diff.Insert, Count: 1}}, script)
}

func TestLineEditsMixed(t *testing.T) {
	source := []string{"x", "same"}
	result := [][]byte{[]byte("same"), []byte("y")}
	script := diff.LineEdits(source, result)
	assert.Equal(t, "Delete(1) Output(1) Insert(1)", script.String())
}

func TestSlices(t *testing.T) {
	r := diff.Slices([]int{1, 2, 3}, []int{1, 3})
	assert.False(t, r.Equal())
	assert.Equal(t, "Output(1) Delete(1) Output(1)", r.Script.String())
	assert.Equal(t, " 1\n-2\n 3", r.String())
}

func TestText(t *testing.T) {
	r := diff.Text("a\nb\n", "\n  \na\r\nc  \n\n")
	assert.Equal(t, []string{"a", "b"}, r.Source)
	assert.Equal(t, []string{"a", "c"}, r.Result)
	assert.Equal(t, " a\n-b\n+c", r.String())

	rb := diff.Text([]byte("x\ny"), []byte("x\rz"))
	assert.Equal(t, " x\n-y\n+z", rb.String())

	assert.True(t, diff.Text("same\n", "same  \r\n\r\n").Equal())
}

func TestScript(t *testing.T) {
	var empty diff.Script
	assert.Equal(t, "", empty.String())

	script := diff.Edits(
		[]string{"a1", "sX", "a2", "sW", "sX", "a3", "sY", "a4", "sZ"},
		[]string{"b1", "b2", "sW", "sX", "b3", "sY", "b4", "sZ"},
	)
	output, deleted, inserted := script.Counts()
	assert.Equal(t, 4, output)
	assert.Equal(t, 5, deleted)
	assert.Equal(t, 4, inserted)

	assert.Equal(t, "Delete(3)", diff.Edit{Op: diff.Delete, Count: 3}.String())
	assert.Equal(t, "Op(9)", diff.Op(9).String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		script         diff.Script
		source, result int
		err            string
	}{
		{"empty", nil, 0, 0, ""},
		{"equal", nil, 3, 3, ""},
		{"empty for different lengths", nil, 1, 2, "empty diff for 1 source and 2 result items"},
		{"replace", diff.Script{{diff.Delete, 1}, {diff.Insert, 1}}, 1, 1, ""},
		{"zero count", diff.Script{{diff.Output, 0}}, 0, 0, "empty edit"},
		{"negative count", diff.Script{{diff.Delete, -1}}, 0, 0, "empty edit"},
		{"unknown op", diff.Script{{diff.Op(7), 1}}, 1, 1, "unknown edit"},
		{"adjacent outputs", diff.Script{{diff.Output, 1}, {diff.Output, 1}}, 2, 2, "adjacent Output edits"},
		{"adjacent deletes", diff.Script{{diff.Delete, 1}, {diff.Delete, 1}}, 2, 0, "adjacent Delete edits"},
		{"insert before delete", diff.Script{{diff.Insert, 1}, {diff.Delete, 1}}, 1, 1, "Insert before Delete"},
		{"short source", diff.Script{{diff.Delete, 1}}, 2, 0, "covers 1 source items, want 2"},
		{"short result", diff.Script{{diff.Output, 1}}, 1, 2, "covers 1 result items, want 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := diff.Validate(tc.script, tc.source, tc.result)
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestApply(t *testing.T) {
	source := []string{"a", "b", "c"}
	result := []string{"a", "x", "c", "d"}
	got, err := diff.Apply(diff.Edits(source, result), source, result)
	require.NoError(t, err)
	assert.Equal(t, result, got)

	_, err = diff.Apply(diff.Script{{diff.Output, 3}}, []string{"a"}, []string{"a"})
	require.Error(t, err)
}

func TestApplyEqual(t *testing.T) {
	same := []string{"gargantuan", "line 2"}
	script := diff.Edits(same, same)
	require.Empty(t, script)
	require.NoError(t, diff.Validate(script, len(same), len(same)))

	got, err := diff.Apply(script, same, same)
	require.NoError(t, err)
	assert.Equal(t, same, got)
	got[0] = "changed"
	assert.Equal(t, "gargantuan", same[0])

	_, err = diff.Apply(script, same, []string{"x"})
	require.ErrorContains(t, err, "empty diff")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := diff.Render(&buf, diff.Script{{diff.Insert, 2}}, nil, []string{"x"})
	require.ErrorContains(t, err, "out of bounds of result")

	buf.Reset()
	err = diff.Render(&buf, diff.Script{{diff.Output, 1}}, nil, []string{"x"})
	require.ErrorContains(t, err, "out of bounds of source")

	buf.Reset()
	err = diff.Render(&buf, diff.Script{{diff.Delete, -1}}, []string{"a"}, nil)
	require.ErrorContains(t, err, "edit Delete(-1) at 0 is empty")

	bad := diff.Report[string]{Source: []string{"a"}, Script: diff.Script{{diff.Output, 0}}}
	assert.Equal(t, "diff: edit Output(0) at 0 is empty", bad.String())

	buf.Reset()
	err = diff.Render(&buf, diff.Script{{diff.Output, 1}, {diff.Delete, 1}, {diff.Insert, 1}},
		[][]byte{[]byte("keep"), []byte("old")}, [][]byte{[]byte("keep"), []byte("new")})
	require.NoError(t, err)
	assert.Equal(t, " keep\n-old\n+new", buf.String())

	r := diff.Slices([]string{"line 1", "line 2"}, nil)
	buf.Reset()
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "-line 1\n-line 2", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

// minimalEdits returns the number of lines deleted and inserted by the
// line mode diff of diffmatchpatch, which is minimal when it has no
// deadline.
func minimalEdits(a, b []string) int {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	ra, rb, _ := dmp.DiffLinesToRunes(joinLines(a), joinLines(b))
	n := 0
	for _, d := range dmp.DiffMainRunes(ra, rb, false) {
		if d.Type != diffmatchpatch.DiffEqual {
			n += utf8.RuneCountInString(d.Text)
		}
	}
	return n
}

func joinLines(l []string) string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func randomLines(rnd *rand.Rand, n int) []string {
	out := make([]string, rnd.Intn(n+1))
	for i := range out {
		out[i] = string(rune('a' + rnd.Intn(4)))
	}
	return out
}

func TestRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		source := randomLines(rnd, 20)
		result := randomLines(rnd, 20)

		script := diff.Edits(source, result)
		require.NoError(t, diff.Validate(script, len(source), len(result)), "%q -> %q: %v", source, result, script)

		got, err := diff.Apply(script, source, result)
		require.NoError(t, err)
		require.Equal(t, strings.Join(result, ""), strings.Join(got, ""))

		_, deleted, inserted := script.Counts()
		require.Equal(t, minimalEdits(source, result), deleted+inserted, "%q -> %q: %v", source, result, script)

		require.Nil(t, diff.Edits(source, source))
	}
}
