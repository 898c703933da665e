// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package difftest supplies a set of tests that will operate on any
// implementation of a line diff as exposed by "github.com/tuxkit/diff".
package difftest

import (
	"strings"
	"testing"

	"github.com/tuxkit/diff"
	"github.com/tuxkit/diff/lcs"
)

var TestCases = []struct {
	Name             string
	Source, Result   []string
	Rendered, Script string
	NoDiff           bool
}{{
	Name: "empty",
}, {
	Name:   "no_diff",
	Source: lines("gargantuan"),
	Result: lines("gargantuan"),
}, {
	Name:     "empty_result",
	Source:   lines("line 1", "line 2"),
	Rendered: "-line 1\n-line 2",
	Script:   "Delete(2)",
}, {
	Name:     "empty_source",
	Result:   lines("line 1", "line 2"),
	Rendered: "+line 1\n+line 2",
	Script:   "Insert(2)",
}, {
	Name:     "nothing_in_common",
	Source:   lines("line 1", "line 2"),
	Result:   lines("line A", "line B"),
	Rendered: "-line 1\n-line 2\n+line A\n+line B",
	Script:   "Delete(2) Insert(2)",
}, {
	Name:     "removed_suffix",
	Source:   lines("same 1", "same 2", "suffix 1", "suffix 2"),
	Result:   lines("same 1", "same 2"),
	Rendered: " same 1\n same 2\n-suffix 1\n-suffix 2",
	Script:   "Output(2) Delete(2)",
}, {
	Name:     "added_suffix",
	Source:   lines("same 1", "same 2"),
	Result:   lines("same 1", "same 2", "suffix 1", "suffix 2"),
	Rendered: " same 1\n same 2\n+suffix 1\n+suffix 2",
	Script:   "Output(2) Insert(2)",
}, {
	Name:     "removed_prefix",
	Source:   lines("prefix 1", "prefix 2", "same 1", "same 2"),
	Result:   lines("same 1", "same 2"),
	Rendered: "-prefix 1\n-prefix 2\n same 1\n same 2",
	Script:   "Delete(2) Output(2)",
}, {
	Name:     "added_prefix",
	Source:   lines("same 1", "same 2"),
	Result:   lines("prefix 1", "prefix 2", "same 1", "same 2"),
	Rendered: "+prefix 1\n+prefix 2\n same 1\n same 2",
	Script:   "Insert(2) Output(2)",
}, {
	Name:     "removed_prefix_and_suffix",
	Source:   lines("prefix 1", "prefix 2", "same 1", "same 2", "suffix 1", "suffix 2"),
	Result:   lines("same 1", "same 2"),
	Rendered: "-prefix 1\n-prefix 2\n same 1\n same 2\n-suffix 1\n-suffix 2",
	Script:   "Delete(2) Output(2) Delete(2)",
}, {
	Name:     "added_prefix_and_suffix",
	Source:   lines("same 1", "same 2"),
	Result:   lines("prefix 1", "prefix 2", "same 1", "same 2", "suffix 1", "suffix 2"),
	Rendered: "+prefix 1\n+prefix 2\n same 1\n same 2\n+suffix 1\n+suffix 2",
	Script:   "Insert(2) Output(2) Insert(2)",
}, {
	Name:     "insert_line",
	Source:   lines("1: one", "3: three"),
	Result:   lines("1: one", "2: two", "3: three"),
	Rendered: " 1: one\n+2: two\n 3: three",
	Script:   "Output(1) Insert(1) Output(1)",
}, {
	Name:     "replace_middle",
	Source:   lines("A", "B", "C"),
	Result:   lines("A", "X", "C"),
	Rendered: " A\n-B\n+X\n C",
	Script:   "Output(1) Delete(1) Insert(1) Output(1)",
}, {
	Name:     "multiple_replace",
	Source:   lines("A", "B", "C", "D", "E", "F", "G"),
	Result:   lines("A", "H", "I", "J", "E", "F", "K"),
	Rendered: " A\n-B\n-C\n-D\n+H\n+I\n+J\n E\n F\n-G\n+K",
	Script:   "Output(1) Delete(3) Insert(3) Output(2) Delete(1) Insert(1)",
}, {
	Name:     "interleaved",
	Source:   lines("a1", "sX", "a2", "sW", "sX", "a3", "sY", "a4", "sZ"),
	Result:   lines("b1", "b2", "sW", "sX", "b3", "sY", "b4", "sZ"),
	Rendered: "-a1\n-sX\n-a2\n+b1\n+b2\n sW\n sX\n-a3\n+b3\n sY\n-a4\n+b4\n sZ",
	Script:   "Delete(3) Insert(2) Output(2) Delete(1) Insert(1) Output(1) Delete(1) Insert(1) Output(1)",
}, {
	Name:     "move_block",
	Source:   lines("a", "b", "c", "d", "e"),
	Result:   lines("d", "e", "a", "b", "c"),
	Rendered: "+d\n+e\n a\n b\n c\n-d\n-e",
	Script:   "Insert(2) Output(3) Delete(2)",
}, {
	Name:     "duplicate",
	Source:   lines("x", "x", "x"),
	Result:   lines("x", "x"),
	Rendered: " x\n x\n-x",
	Script:   "Output(2) Delete(1)",
}, {
	Name:     "insert_between_repeats",
	Source:   lines("a", "b", "a", "b"),
	Result:   lines("a", "b", "c", "a", "b"),
	Rendered: " a\n b\n+c\n a\n b",
	Script:   "Output(2) Insert(1) Output(2)",
}, {
	Name:     "swap",
	Source:   lines("a", "b"),
	Result:   lines("b", "a"),
	Rendered: "+b\n a\n-b",
	Script:   "Insert(1) Output(1) Delete(1)",
	NoDiff:   true, // ties are broken differently by other aligners
}, {
	Name:     "delete_front",
	Source:   lines("A", "B", "C", "A", "B", "B", "A"),
	Result:   lines("C", "B", "A", "B", "A", "C"),
	Rendered: "-A\n+C\n B\n-C\n A\n B\n-B\n A\n+C",
	Script:   "Delete(1) Insert(1) Output(1) Delete(1) Output(2) Delete(1) Output(1) Insert(1)",
	NoDiff:   true, // ties are broken differently by other aligners
}}

func lines(l ...string) []string { return l }

// DiffTest runs every test case through compute. The script must be
// valid, must rebuild the result, must keep as many items as the longest
// common subsequence and, unless the case is marked NoDiff, must match
// the expected rendering exactly.
func DiffTest(t *testing.T, compute func(source, result []string) diff.Script) {
	t.Helper()
	for _, test := range TestCases {
		t.Run(test.Name, func(t *testing.T) {
			t.Helper()
			script := compute(test.Source, test.Result)
			if err := diff.Validate(script, len(test.Source), len(test.Result)); err != nil {
				t.Fatalf("invalid script %v: %v", script, err)
			}
			got, err := diff.Apply(script, test.Source, test.Result)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if strings.Join(got, "\n") != strings.Join(test.Result, "\n") || len(got) != len(test.Result) {
				t.Errorf("got patched %q, expected %q", got, test.Result)
			}
			output, _, _ := script.Counts()
			if len(script) == 0 {
				output = len(test.Source)
			}
			if want := lcs.Length(lcs.Slices(test.Source, test.Result)); output != want {
				t.Errorf("script %v keeps %d items, want %d", script, output, want)
			}
			rendered := diff.Report[string]{Source: test.Source, Result: test.Result, Script: script}.String()
			if !test.NoDiff && rendered != test.Rendered {
				t.Errorf("got diff:\n%v\nexpected:\n%v", rendered, test.Rendered)
			}
			if !test.NoDiff && script.String() != test.Script {
				t.Errorf("got script %v, expected %v", script, test.Script)
			}
		})
	}
}
