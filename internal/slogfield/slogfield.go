// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield names the slog attributes the loader logs with.
package slogfield

import (
	"fmt"
	"log/slog"
)

// Path returns an slog.Attr for a file path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// MediaType returns an slog.Attr for a sniffed media type.
func MediaType(mt string) slog.Attr {
	return slog.String("media_type", mt)
}

// Kind returns an slog.Attr for the file kind selected by the sniffer.
func Kind(k fmt.Stringer) slog.Attr {
	return slog.String("kind", k.String())
}

// Encoding returns an slog.Attr for the compression a file was stored with.
func Encoding(e fmt.Stringer) slog.Attr {
	return slog.String("encoding", e.String())
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
