// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines splits text into normalized lines for line-oriented
// comparison.
//
// Normalized lines carry no trailing white space, and a list of them never
// starts or ends with a blank line. Leading indentation and blank lines
// between non-blank ones are preserved.
package lines

import (
	"unicode"
	"unicode/utf8"

	"github.com/pgavlin/text"
)

// Split splits s on "\n", "\r\n" and lone "\r", then normalizes the lines
// with Trim. The returned lines share storage with s.
func Split[S text.Text](s S) []S {
	var out []S
	for start := 0; start < len(s); {
		end := start
		for end < len(s) && s[end] != '\n' && s[end] != '\r' {
			end++
		}
		out = append(out, s[start:end])
		switch {
		case end == len(s):
			start = end
		case s[end] == '\r' && end+1 < len(s) && s[end+1] == '\n':
			start = end + 2
		default:
			start = end + 1
		}
	}
	return Trim(out)
}

// Trim removes trailing white space from every line and drops leading and
// trailing blank lines. It modifies lines in place and returns the
// trimmed sub-slice.
func Trim[S text.Text](lines []S) []S {
	first, last := len(lines), 0
	for i, l := range lines {
		l = trimRight(l)
		lines[i] = l
		if len(l) > 0 {
			first = min(first, i)
			last = i + 1
		}
	}
	if first >= last {
		return nil
	}
	return lines[first:last]
}

// Dedent splits s into normalized lines, removes the indentation of the
// first line from every line that starts with it, and joins the result
// with "\n".
func Dedent[S text.Text](s S) S {
	ls := Split(s)
	if len(ls) == 0 {
		var empty S
		return empty
	}
	indent := ls[0][:len(ls[0])-len(trimLeft(ls[0]))]
	for i, l := range ls {
		if hasPrefix(l, indent) {
			ls[i] = l[len(indent):]
		}
	}
	return Join(ls)
}

// Join joins lines with "\n", without a trailing separator.
func Join[S text.Text](lines []S) S {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	b := make([]byte, 0, max(n-1, 0))
	for i, l := range lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l...)
	}
	return S(b)
}

func trimRight[S text.Text](s S) S {
	for len(s) > 0 {
		r, size := lastRune(s)
		if !unicode.IsSpace(r) {
			break
		}
		s = s[:len(s)-size]
	}
	return s
}

func trimLeft[S text.Text](s S) S {
	for len(s) > 0 {
		r, size := firstRune(s)
		if !unicode.IsSpace(r) {
			break
		}
		s = s[size:]
	}
	return s
}

func lastRune[S text.Text](s S) (rune, int) {
	if c := s[len(s)-1]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	var buf [utf8.UTFMax]byte
	n := copy(buf[:], s[max(len(s)-utf8.UTFMax, 0):])
	return utf8.DecodeLastRune(buf[:n])
}

func firstRune[S text.Text](s S) (rune, int) {
	if c := s[0]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	var buf [utf8.UTFMax]byte
	n := copy(buf[:], s)
	return utf8.DecodeRune(buf[:n])
}

func hasPrefix[S text.Text](s, prefix S) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
