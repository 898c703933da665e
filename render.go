// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes one line per item covered by script: common items are
// prefixed with a space, deleted items with "-" and inserted items with
// "+". Lines are separated by "\n" with no trailing separator.
//
// Strings and byte slices are written verbatim; other items are formatted
// with fmt's %v verb.
func Render[T any](w io.Writer, script Script, source, result []T) error {
	bw := bufio.NewWriter(w)
	first := true
	line := func(prefix byte, item T) {
		if !first {
			bw.WriteByte('\n')
		}
		first = false
		bw.WriteByte(prefix)
		writeItem(bw, item)
	}

	var src, dst int
	for i, e := range script {
		if e.Count <= 0 {
			return fmt.Errorf("edit %v at %d is empty", e, i)
		}
		switch e.Op {
		case Output:
			if src+e.Count > len(source) {
				return fmt.Errorf("edit %v at %d is out of bounds of source", e, i)
			}
			for _, item := range source[src : src+e.Count] {
				line(' ', item)
			}
			src += e.Count
			dst += e.Count
		case Delete:
			if src+e.Count > len(source) {
				return fmt.Errorf("edit %v at %d is out of bounds of source", e, i)
			}
			for _, item := range source[src : src+e.Count] {
				line('-', item)
			}
			src += e.Count
		case Insert:
			if dst+e.Count > len(result) {
				return fmt.Errorf("edit %v at %d is out of bounds of result", e, i)
			}
			for _, item := range result[dst : dst+e.Count] {
				line('+', item)
			}
			dst += e.Count
		default:
			return fmt.Errorf("unknown edit %v at %d", e, i)
		}
	}
	return bw.Flush()
}

func writeItem(w *bufio.Writer, item any) {
	switch v := item.(type) {
	case string:
		w.WriteString(v)
	case []byte:
		w.Write(v)
	default:
		fmt.Fprint(w, v)
	}
}
