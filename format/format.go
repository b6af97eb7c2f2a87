// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package format turns the bytes of a single file into a value.Value.
//
// Parsers never touch the filesystem and never resolve file references;
// the caller decides what to do with string leaves of structured config.
package format

import "fmt"

// ParseError occurs when content is malformed for its format.
type ParseError struct {
	Format string
	Cause  error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}
