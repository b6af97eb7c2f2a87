// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try folds deferred cleanup failures and recovered panics into
// a function's named error result.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the recovered value if it was itself an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred directly. Any recovered panic is joined onto *err.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	join(err, PanicError{Value: r})
}

// CloseError occurs when closing a resource fails after it has been used.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it is an io.Closer and joins any failure onto *err.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok || c == nil {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}
	join(err, CloseError{Cause: cerr})
}

func join(err *error, e error) {
	if *err == nil {
		*err = e
		return
	}
	*err = errors.Join(*err, e)
}
