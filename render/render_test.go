// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

type closeReader struct {
	io.Reader
	closed bool
}

func (r *closeReader) Close() error {
	r.closed = true
	return nil
}

func TestTextTemplateRenderer_Read(t *testing.T) {
	t.Run("will render env and default funcs", func(t *testing.T) {
		t.Setenv("ASSETTREE_RENDER_TEST", "/data/calib.yaml")

		r := strings.NewReader(`calib: {{ env "ASSETTREE_RENDER_TEST" }}
rate: {{ env "ASSETTREE_RENDER_UNSET" | default "30" }}`)

		b, err := io.ReadAll(TextTemplate(r))
		require.NoError(t, err)
		require.Equal(t, "calib: /data/calib.yaml\nrate: 30", string(b))
	})

	t.Run("will use custom delimiters and funcs", func(t *testing.T) {
		r := strings.NewReader(`name: <% name %>`)

		b, err := io.ReadAll(TextTemplate(
			r,
			Delims("<%", "%>"),
			Func("name", func() string { return "rig" }),
		))
		require.NoError(t, err)
		require.Equal(t, "name: rig", string(b))
	})

	t.Run("will close the underlying io.Reader", func(t *testing.T) {
		r := &closeReader{Reader: strings.NewReader("a: 1")}

		_, err := io.ReadAll(TextTemplate(r))
		require.NoError(t, err)
		require.True(t, r.closed)
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			_, err := io.ReadAll(TextTemplate(r))
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})

		t.Run("if the underlying io.Reader contains an invalid text/template", func(t *testing.T) {
			r := strings.NewReader(`{{ hello`)

			_, err := io.ReadAll(TextTemplate(r))

			var ierr ParseError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.Error(t, ierr.Unwrap()) {
				return
			}
		})

		t.Run("if the parsed text/template fails to execute", func(t *testing.T) {
			r := strings.NewReader(`{{ hello }}`)

			_, err := io.ReadAll(TextTemplate(
				r,
				Func("hello", func() string {
					panic("ahhhh")
				}),
			))

			var ierr ExecError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.Error(t, ierr.Unwrap()) {
				return
			}
		})
	})
}

func TestBytes(t *testing.T) {
	b, err := Bytes([]byte(`n: {{ 0 | default 3 }}`))
	require.NoError(t, err)
	require.Equal(t, "n: 3", string(b))
}
