// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assettree

import (
	"fmt"
	"strings"
)

// NotFoundError occurs when the file given to [Loader.ReadFile] does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// ReadError occurs when an existing file could not be read.
type ReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read file: %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ReadError) Unwrap() error {
	return e.Cause
}

// FileError reports which file failed to load. The Cause is most
// likely a [format.ParseError] or [format.ImageDecodeError].
type FileError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e FileError) Error() string {
	return fmt.Sprintf("failed to load file: %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileError) Unwrap() error {
	return e.Cause
}

// ArrayLoadError occurs when a .npy file could not be read as an array.
type ArrayLoadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ArrayLoadError) Error() string {
	return fmt.Sprintf("failed to load array: %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ArrayLoadError) Unwrap() error {
	return e.Cause
}

// CycleError occurs when a file refers back to itself, directly or through
// other files. Chain starts at the first file of the cycle, not at the
// root file, and ends with that same file entered again.
type CycleError struct {
	Chain []string
}

// Error implements the error interface.
func (e CycleError) Error() string {
	return fmt.Sprintf("file reference cycle: %s", strings.Join(e.Chain, " -> "))
}
