// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package render pre-renders structured config files as text/templates.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/z5labs/assettree/internal/try"
)

// Option represents options for configuring the TextTemplateRenderer.
type Option func(*TextTemplateRenderer)

// Func registers the given function, f, for use in the template
// via the given name.
func Func(name string, f any) Option {
	return func(ttr *TextTemplateRenderer) {
		ttr.funcs[name] = f
	}
}

// Delims sets the action delimiters to the specified strings.
// An empty delimiter stands for the corresponding default: {{ or }}.
func Delims(left, right string) Option {
	return func(ttr *TextTemplateRenderer) {
		ttr.leftDelim = left
		ttr.rightDelim = right
	}
}

// Name sets the template name reported in parse and exec errors.
func Name(name string) Option {
	return func(ttr *TextTemplateRenderer) {
		ttr.name = name
	}
}

// TextTemplateRenderer is an io.Reader that renders a text/template from
// a given io.Reader. The rendered template can then be read via [TextTemplateRenderer.Read].
type TextTemplateRenderer struct {
	r io.Reader

	name       string
	leftDelim  string
	rightDelim string
	funcs      template.FuncMap
	renderOnce sync.Once
	buf        bytes.Buffer
	err        error
}

// TextTemplate configures a TextTemplateRenderer. The env and default
// funcs are always registered; opts may override them.
func TextTemplate(r io.Reader, opts ...Option) *TextTemplateRenderer {
	ttr := &TextTemplateRenderer{
		r:    r,
		name: "config",
		funcs: template.FuncMap{
			"env":     Env,
			"default": Default,
		},
	}
	for _, opt := range opts {
		opt(ttr)
	}
	return ttr
}

// ParseError occurs when the template fails to be parsed.
type ParseError struct {
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse template: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

// ExecError occurs when a template fails to execute. Most
// likely cause is using template functions returning an error or panicing.
type ExecError struct {
	Cause error
}

// Error implements the error interface.
func (e ExecError) Error() string {
	return fmt.Sprintf("failed to exec template: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ExecError) Unwrap() error {
	return e.Cause
}

// Read implements the io.Reader interface.
func (ttr *TextTemplateRenderer) Read(b []byte) (int, error) {
	ttr.renderOnce.Do(func() {
		ttr.err = ttr.render()
	})
	if ttr.err != nil {
		return 0, ttr.err
	}
	return ttr.buf.Read(b)
}

func (ttr *TextTemplateRenderer) render() (err error) {
	defer try.Close(&err, ttr.r)

	var sb strings.Builder
	_, err = io.Copy(&sb, ttr.r)
	if err != nil {
		return err
	}

	tmpl, err := template.New(ttr.name).
		Delims(ttr.leftDelim, ttr.rightDelim).
		Funcs(ttr.funcs).
		Option("missingkey=error").
		Parse(sb.String())
	if err != nil {
		return ParseError{Cause: err}
	}

	err = tmpl.Execute(&ttr.buf, struct{}{})
	if err != nil {
		return ExecError{Cause: err}
	}
	return nil
}

// Bytes renders b in one call.
func Bytes(b []byte, opts ...Option) ([]byte, error) {
	return io.ReadAll(TextTemplate(bytes.NewReader(b), opts...))
}
