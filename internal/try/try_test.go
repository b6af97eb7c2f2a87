// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("will set the error ref value", func(t *testing.T) {
		t.Run("if a non-error panic is recovered and the ref is nil", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				panic("corrupt image header")
			}

			err := f()

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "corrupt image header", perr.Value) {
				return
			}
			if !assert.Nil(t, perr.Unwrap()) {
				return
			}
		})

		t.Run("if an error panic is recovered and the ref is already set", func(t *testing.T) {
			funcErr := errors.New("func error")
			panicErr := errors.New("panic error")
			f := func() (err error) {
				defer Recover(&err)
				err = funcErr
				panic(panicErr)
			}

			err := f()
			if !assert.ErrorIs(t, err, funcErr) {
				return
			}
			if !assert.ErrorIs(t, err, panicErr) {
				return
			}
		})
	})

	t.Run("will leave the error ref value alone", func(t *testing.T) {
		t.Run("if nothing panics", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				return nil
			}

			if !assert.Nil(t, f()) {
				return
			}
		})
	})
}

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Run("will set the error ref value", func(t *testing.T) {
		t.Run("if the close fails and the ref value is nil", func(t *testing.T) {
			closeErr := errors.New("close failed")
			f := func() (err error) {
				defer Close(&err, closeFunc(func() error { return closeErr }))
				return nil
			}

			err := f()

			var cerr CloseError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.ErrorIs(t, cerr, closeErr) {
				return
			}
		})

		t.Run("if the close fails and the ref value is non-nil", func(t *testing.T) {
			closeErr := errors.New("close failed")
			funcErr := errors.New("func error")
			f := func() (err error) {
				defer Close(&err, closeFunc(func() error { return closeErr }))
				return funcErr
			}

			err := f()
			if !assert.ErrorIs(t, err, funcErr) {
				return
			}
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}
		})
	})

	t.Run("will not change the error ref value", func(t *testing.T) {
		t.Run("if the value is not an io.Closer", func(t *testing.T) {
			funcErr := errors.New("func error")
			f := func() (err error) {
				defer Close(&err, "not a closer")
				return funcErr
			}

			if !assert.Equal(t, funcErr, f()) {
				return
			}
		})

		t.Run("if Close succeeds", func(t *testing.T) {
			f := func() (err error) {
				defer Close(&err, closeFunc(func() error { return nil }))
				return nil
			}

			if !assert.Nil(t, f()) {
				return
			}
		})
	})
}
