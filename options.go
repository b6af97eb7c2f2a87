// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assettree

import (
	"log/slog"

	"github.com/z5labs/assettree/format"
	"github.com/z5labs/assettree/internal/fsys"
	"github.com/z5labs/assettree/internal/otelslog"
	"github.com/z5labs/assettree/render"
)

// FS is the set of filesystem operations a [Loader] performs.
type FS = fsys.FS

// Option represents options for configuring a [Loader].
type Option func(*Loader)

// LogHandler configures the underlying slog.Handler. Records are
// annotated with the ids of the active OpenTelemetry span.
func LogHandler(h slog.Handler) Option {
	return func(l *Loader) {
		l.log = slog.New(otelslog.NewHandler(h))
	}
}

// FileSystem replaces the host filesystem.
func FileSystem(fs FS) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithCache shares c with the Loader instead of allocating a new one.
func WithCache(c *Cache) Option {
	return func(l *Loader) {
		l.cache = c
	}
}

// WithBaseDir sets the directory paths given to [Loader.ReadFile] are
// relative to. Defaults to the working directory.
func WithBaseDir(dir string) Option {
	return func(l *Loader) {
		l.baseDir = dir
	}
}

// SearchPaths adds directories which relative references are tried
// against after the referencing file's own directory.
func SearchPaths(dirs ...string) Option {
	return func(l *Loader) {
		l.searchPaths = append(l.searchPaths, dirs...)
	}
}

// TagDecoder registers dec for YAML nodes tagged with tag, replacing any
// decoder already registered for it.
func TagDecoder(tag string, dec format.TagDecoder) Option {
	return func(l *Loader) {
		l.tags[tag] = dec
	}
}

// RenderTemplates renders YAML, JSON and TOML files as text/templates
// before they are parsed.
func RenderTemplates(opts ...render.Option) Option {
	return func(l *Loader) {
		l.render = true
		l.renderOpts = append(l.renderOpts, opts...)
	}
}

// FallbackToBlob keeps the raw content of unclassifiable files as a
// [value.Blob] instead of their path.
func FallbackToBlob() Option {
	return func(l *Loader) {
		l.fallbackToBlob = true
	}
}
