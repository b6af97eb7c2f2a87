// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package value

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Fprint writes an indented, human readable rendering of v to w. Mapping
// keys are sorted. Arrays start on their own line so rows stay aligned.
func Fprint(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	printValue(bw, v, 0)
	return bw.Flush()
}

// Sprint is like Fprint but returns the rendering as a string.
func Sprint(v Value) string {
	var sb strings.Builder
	Fprint(&sb, v)
	return sb.String()
}

func printValue(w *bufio.Writer, v Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch x := v.(type) {
	case Mapping:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			printEntry(w, pad+k+":", x[k], indent)
		}
	case Sequence:
		for _, e := range x {
			printEntry(w, pad+"-", e, indent)
		}
	default:
		fmt.Fprintf(w, "%s%s\n", pad, scalarString(v))
	}
}

func printEntry(w *bufio.Writer, prefix string, v Value, indent int) {
	switch x := v.(type) {
	case Mapping, Sequence:
		fmt.Fprintln(w, prefix)
		printValue(w, x, indent+1)
	case Array:
		fmt.Fprintf(w, "%s\n%s\n", prefix, x)
	default:
		fmt.Fprintf(w, "%s %s\n", prefix, scalarString(v))
	}
}

func scalarString(v Value) string {
	switch x := v.(type) {
	case String:
		return string(x)
	case Null, nil:
		return "null"
	case Blob:
		return fmt.Sprintf("<blob %d bytes>", len(x))
	case Array:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
