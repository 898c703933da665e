// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tuxdiff compares text files line by line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"

	"github.com/tuxkit/diff"
	"github.com/tuxkit/diff/filetest"
	"github.com/tuxkit/diff/lcs"
	"github.com/tuxkit/diff/lines"
	"github.com/tuxkit/diff/myers"
)

var cmdSet *subcmd.CommandSet

var stdout io.Writer = os.Stdout

var errDifferent = errors.New("files differ")

type linesFlags struct {
	cmdutil.LoggingFlags
	Raw      bool `subcmd:"raw,false,'compare lines as they are, without trimming white space and blank lines'"`
	ExitCode bool `subcmd:"exit-code,false,'exit with a non-zero status when the files differ'"`
}

type scriptFlags struct {
	cmdutil.LoggingFlags
	Raw   bool `subcmd:"raw,false,'compare lines as they are, without trimming white space and blank lines'"`
	Myers bool `subcmd:"myers,false,'align lines with the Myers algorithm instead of dynamic programming'"`
}

type testdataFlags struct {
	cmdutil.LoggingFlags
}

func init() {
	linesCmd := subcmd.NewCommand("lines",
		subcmd.MustRegisterFlagStruct(&linesFlags{}, nil, nil),
		runLines, subcmd.ExactlyNumArguments(2))
	linesCmd.Document(`print the line differences between two files.

Unchanged lines are prefixed with a space, deleted lines with - and
inserted lines with +. Nothing is printed when the files are equal.`, "<source> <result>")

	scriptCmd := subcmd.NewCommand("script",
		subcmd.MustRegisterFlagStruct(&scriptFlags{}, nil, nil),
		runScript, subcmd.ExactlyNumArguments(2))
	scriptCmd.Document(`print the run-length edit script that turns one file into another.`, "<source> <result>")

	testdataCmd := subcmd.NewCommand("testdata",
		subcmd.MustRegisterFlagStruct(&testdataFlags{}, nil, nil),
		runTestdata, subcmd.ExactlyNumArguments(2))
	testdataCmd.Document(`run the .input/.valid test cases in a directory with a built-in function.

The function is one of: empty (no output), reverse (reverse the input lines)
or id (output the input lines).`, "<empty|reverse|id> <directory>")

	cmdSet = subcmd.NewCommandSet(linesCmd, scriptCmd, testdataCmd)
	cmdSet.Document(`compare text files line by line.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func readLines(filename string, raw bool) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if !raw {
		return lines.Split(string(data)), nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	if len(text) == 0 {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func readPair(source, result string, raw bool) ([]string, []string, error) {
	a, err := readLines(source, raw)
	if err != nil {
		return nil, nil, err
	}
	b, err := readLines(result, raw)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func runLines(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*linesFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	source, result, err := readPair(args[0], args[1], fv.Raw)
	if err != nil {
		return err
	}
	report := diff.Lines(source, result)
	output, deleted, inserted := report.Script.Counts()
	logger.Debug("compared", "source", args[0], "result", args[1],
		"output", output, "deleted", deleted, "inserted", inserted)
	if report.Equal() {
		return nil
	}
	if _, err := report.WriteTo(stdout); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if fv.ExitCode {
		return errDifferent
	}
	return nil
}

func runScript(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*scriptFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	source, result, err := readPair(args[0], args[1], fv.Raw)
	if err != nil {
		return err
	}
	var align lcs.Aligner
	if fv.Myers {
		align = myers.Align
	}
	script := diff.Compute(lcs.Lines(source, result), align)
	logger.Debug("computed script", "source.lines", len(source), "result.lines", len(result),
		"edits", len(script), "myers", fv.Myers)

	if len(script) == 0 {
		fmt.Fprintln(stdout, "no differences")
		return nil
	}
	fmt.Fprintln(stdout, script)
	output, deleted, inserted := script.Counts()
	fmt.Fprintf(stdout, "output: %d, deleted: %d, inserted: %d\n", output, deleted, inserted)
	return nil
}

var testdataFuncs = map[string]func([]string) []string{
	"empty": func([]string) []string { return nil },
	"reverse": func(input []string) []string {
		out := make([]string, len(input))
		for i, l := range input {
			out[len(input)-1-i] = l
		}
		return out
	},
	"id": func(input []string) []string { return input },
}

func runTestdata(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*testdataFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	fn, ok := testdataFuncs[args[0]]
	if !ok {
		return fmt.Errorf("invalid function: %v: use one of empty, reverse or id", args[0])
	}
	run, err := filetest.Execute(args[1], filetest.LinesFunc(fn))
	if run == nil {
		return err
	}
	logger.Debug("executed test cases", "dir", args[1], "cases", len(run.Results()), "failed", len(run.Failed()))

	errs := &errors.M{}
	errs.Append(err)
	errs.Append(run.Report(stdout))
	if n := len(run.Failed()); n > 0 {
		errs.Append(fmt.Errorf("%d of %d test cases failed", n, len(run.Results())))
	}
	return errs.Err()
}
