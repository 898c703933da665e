// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filetest runs tests driven by text files.
//
// Every file with the .input extension under a directory is a test case.
// The case's output is compared, line by line, with the file of the same
// name and the .valid extension. Both are normalized with lines.Split, so
// differences in line breaks, trailing white space and surrounding blank
// lines are ignored.
//
// When the .valid file does not exist the case fails and its output is
// written to a .valid.new file, which can be reviewed and renamed to
// create the expected output.
package filetest

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/errors"

	"github.com/tuxkit/diff"
	"github.com/tuxkit/diff/lines"
)

const (
	InputExt    = ".input"
	ValidExt    = ".valid"
	NewValidExt = ".valid.new"
)

// Case is a single test input.
type Case struct {
	Name string // slash separated path relative to the test directory
	Path string
	Text string
}

// Collect returns the cases under dir. Directories are visited breadth
// first and entries of each directory in name order, so files of a
// directory come before the files of its sub-directories. Symbolic links
// to directories are not followed.
func Collect(dir string) ([]Case, error) {
	type pending struct{ name, path string }
	var cases []Case
	queue := []pending{{path: dir}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		entries, err := os.ReadDir(next.path)
		if err != nil {
			return nil, fmt.Errorf("reading test directory: %w", err)
		}
		for _, entry := range entries {
			name := path.Join(next.name, entry.Name())
			p := filepath.Join(next.path, entry.Name())
			if entry.IsDir() {
				queue = append(queue, pending{name: name, path: p})
				continue
			}
			if filepath.Ext(p) != InputExt {
				continue
			}
			text, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("reading test input: %w", err)
			}
			cases = append(cases, Case{Name: name, Path: p, Text: string(text)})
		}
	}
	return cases, nil
}

// Result is the outcome of a single case.
type Result struct {
	Name      string
	ValidFile string // base name of the expected output file
	Success   bool
	Found     bool     // the expected output file exists
	Expected  []string // normalized lines of the expected output
	Actual    []string // normalized lines of the case output
}

// Diff returns the differences from the actual to the expected output.
func (r Result) Diff() diff.Report[string] {
	return diff.Lines(r.Actual, r.Expected)
}

// Run holds the results of Execute in case order.
type Run struct {
	results []Result
}

// Success reports whether every case passed.
func (r *Run) Success() bool {
	return len(r.Failed()) == 0
}

func (r *Run) Results() []Result {
	return r.results
}

func (r *Run) Failed() []Result {
	var failed []Result
	for _, res := range r.results {
		if !res.Success {
			failed = append(failed, res)
		}
	}
	return failed
}

// Report writes the status of every case followed, if any case failed, by
// the differences found for each failed case and a summary.
func (r *Run) Report(w io.Writer) error {
	var buf bytes.Buffer
	for _, res := range r.results {
		if res.Success {
			fmt.Fprintf(&buf, "passed: %s\n", res.Name)
		} else {
			fmt.Fprintf(&buf, "failed: %s\n", res.Name)
		}
	}
	failed := r.Failed()
	if len(failed) > 0 {
		for _, res := range failed {
			if res.Found {
				fmt.Fprintf(&buf, "\n=> `%s` output did not match `%s`:\n", res.Name, res.ValidFile)
				fmt.Fprintf(&buf, "\n%s\n", res.Diff())
			} else {
				fmt.Fprintf(&buf, "\n=> `%s` for test `%s` not found\n", res.ValidFile, res.Name)
				fmt.Fprintf(&buf, ".. created `%s.new` with the current test output\n", res.ValidFile)
			}
		}
		buf.WriteString("\n===== Failed tests =====\n\n")
		for _, res := range failed {
			fmt.Fprintf(&buf, "- %s\n", res.Name)
		}
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Execute runs fn for every case under dir and compares its output with
// the expected output. Failures to read or write expected output files do
// not stop the run: they are returned together with the results.
func Execute(dir string, fn func(Case) string) (*Run, error) {
	cases, err := Collect(dir)
	if err != nil {
		return nil, err
	}
	run := &Run{results: make([]Result, 0, len(cases))}
	errs := &errors.M{}
	for _, c := range cases {
		output := fn(c)
		validPath := strings.TrimSuffix(c.Path, InputExt) + ValidExt
		res := Result{
			Name:      c.Name,
			ValidFile: filepath.Base(validPath),
			Actual:    lines.Split(output),
		}
		raw, err := os.ReadFile(validPath)
		switch {
		case err == nil:
			res.Found = true
			res.Expected = lines.Split(string(raw))
			res.Success = lines.Join(res.Actual) == lines.Join(res.Expected)
		case errors.Is(err, fs.ErrNotExist):
			newPath := strings.TrimSuffix(c.Path, InputExt) + NewValidExt
			if err := os.WriteFile(newPath, []byte(output), 0o644); err != nil {
				errs.Append(fmt.Errorf("writing new output for %v: %w", c.Name, err))
			}
		default:
			errs.Append(fmt.Errorf("reading output file for %v: %w", c.Name, err))
		}
		run.results = append(run.results, res)
	}
	return run, errs.Err()
}

// LinesFunc adapts a function over normalized lines to Execute: the case
// input is split with lines.Split and the returned lines are joined with
// "\n".
func LinesFunc(fn func([]string) []string) func(Case) string {
	return func(c Case) string {
		return lines.Join(fn(lines.Split(c.Text)))
	}
}

// Check executes the cases under dir with LinesFunc(fn), logs the report
// and fails t if any case failed.
func Check(t testing.TB, dir string, fn func([]string) []string) {
	t.Helper()
	run, err := Execute(dir, LinesFunc(fn))
	if run == nil {
		t.Fatalf("filetest %v: %v", dir, err)
		return
	}
	if err != nil {
		t.Errorf("filetest %v: %v", dir, err)
	}
	var report strings.Builder
	run.Report(&report)
	t.Log(report.String())
	if n := len(run.Failed()); n > 0 {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		t.Fatalf("%d test case%s failed", n, plural)
	}
}
