// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package assettree

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/z5labs/assettree/format"
	"github.com/z5labs/assettree/internal/fsys"
	"github.com/z5labs/assettree/internal/otelslog"
	"github.com/z5labs/assettree/internal/pathres"
	"github.com/z5labs/assettree/internal/slogfield"
	"github.com/z5labs/assettree/render"
	"github.com/z5labs/assettree/sniff"
	"github.com/z5labs/assettree/value"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/z5labs/assettree"

// Loader reads files and resolves the file references inside them.
// A Loader is safe for concurrent use, but reads are serialized.
type Loader struct {
	mu sync.Mutex

	fs             FS
	cache          *Cache
	log            *slog.Logger
	baseDir        string
	searchPaths    []string
	tags           format.TagDecoders
	render         bool
	renderOpts     []render.Option
	fallbackToBlob bool
}

// New configures a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:   fsys.OS{},
		log:  slog.New(otelslog.NewHandler(slog.NewTextHandler(io.Discard, nil))),
		tags: format.DefaultTagDecoders(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cache == nil {
		l.cache = NewCache()
	}
	l.tags = l.tags.Clone()
	return l
}

// Cache returns the cache backing l.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// ReadFile loads the file at path, resolving it against the base directory
// when relative. The returned value is fully resolved and cached, so
// reading the same file again returns the same value without touching the
// filesystem.
func (l *Loader) ReadFile(ctx context.Context, path string) (value.Value, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	base, err := l.base()
	if err != nil {
		return nil, err
	}
	p, ok := pathres.Resolve(l.fs, path, base)
	if !ok {
		return nil, NotFoundError{Path: path}
	}
	return l.readFile(ctx, p, nil)
}

// Resolve replaces every string in v which names an existing file,
// relative to baseDir, with that file's content. Mappings and sequences
// are updated in place.
func (l *Loader) Resolve(ctx context.Context, v value.Value, baseDir string) (value.Value, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.resolve(ctx, v, baseDir, nil)
}

func (l *Loader) base() (string, error) {
	if l.baseDir != "" {
		return l.baseDir, nil
	}
	return l.fs.Getwd()
}

func (l *Loader) readFile(ctx context.Context, path string, chain []string) (value.Value, error) {
	if v, ok := l.cache.Get(path); ok {
		return v, nil
	}
	if i := slices.Index(chain, path); i >= 0 {
		return nil, CycleError{Chain: append(slices.Clone(chain[i:]), path)}
	}
	chain = append(slices.Clip(chain), path)

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, "Loader.ReadFile", trace.WithAttributes(
		attribute.String("assettree.path", path),
	))
	defer span.End()

	v, err := l.load(spanCtx, span, path, chain)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.log.DebugContext(spanCtx, "failed to load file", slogfield.Path(path), slogfield.Error(err))
		return nil, err
	}

	l.cache.set(path, v)
	return v, nil
}

func (l *Loader) load(ctx context.Context, span trace.Span, path string, chain []string) (value.Value, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, ReadError{Path: path, Cause: err}
	}

	enc, content, err := sniff.Decompress(raw)
	if err != nil {
		return nil, FileError{Path: path, Cause: err}
	}

	res := sniff.Classify(path, content)
	span.SetAttributes(attribute.String("assettree.kind", res.Kind.String()))
	l.log.DebugContext(
		ctx,
		"loading file",
		slogfield.Path(path),
		slogfield.Kind(res.Kind),
		slogfield.MediaType(res.MediaType),
		slogfield.Encoding(enc),
	)

	if l.render && res.Kind.Structured() {
		content, err = render.Bytes(content, append([]render.Option{render.Name(filepath.Base(path))}, l.renderOpts...)...)
		if err != nil {
			return nil, FileError{Path: path, Cause: err}
		}
	}

	v, err := l.parse(ctx, path, res, content)
	if err != nil {
		return nil, err
	}
	if !res.Kind.Structured() {
		return v, nil
	}
	return l.resolve(ctx, v, filepath.Dir(path), chain)
}

func (l *Loader) parse(ctx context.Context, path string, res sniff.Result, content []byte) (value.Value, error) {
	var (
		v   value.Value
		err error
	)
	switch res.Kind {
	case sniff.YAML:
		v, err = format.YAML(content, l.tags)
	case sniff.JSON:
		v, err = format.JSON(content)
	case sniff.TOML:
		v, err = format.TOML(content)
	case sniff.CSV:
		v, err = format.CSV(content)
	case sniff.Image:
		v, err = format.Image(content)
		if errors.Is(err, image.ErrFormat) {
			return l.fallback(ctx, path, res, content), nil
		}
	case sniff.NPY:
		v, err = format.NPY(content)
		if err != nil {
			return nil, ArrayLoadError{Path: path, Cause: err}
		}
	default:
		return l.fallback(ctx, path, res, content), nil
	}
	if err != nil {
		return nil, FileError{Path: path, Cause: err}
	}
	return v, nil
}

func (l *Loader) fallback(ctx context.Context, path string, res sniff.Result, content []byte) value.Value {
	l.log.WarnContext(
		ctx,
		"unsupported file type, keeping it as is",
		slogfield.Path(path),
		slogfield.MediaType(res.MediaType),
	)
	if l.fallbackToBlob {
		return value.Blob(content)
	}
	return value.String(path)
}

func (l *Loader) resolve(ctx context.Context, v value.Value, base string, chain []string) (value.Value, error) {
	switch x := v.(type) {
	case value.Mapping:
		for k, elem := range x {
			r, err := l.resolve(ctx, elem, base, chain)
			if err != nil {
				return nil, err
			}
			x[k] = r
		}
		return x, nil
	case value.Sequence:
		for i, elem := range x {
			r, err := l.resolve(ctx, elem, base, chain)
			if err != nil {
				return nil, err
			}
			x[i] = r
		}
		return x, nil
	case value.String:
		p, ok := pathres.Resolve(l.fs, string(x), base, l.searchPaths...)
		if !ok {
			return x, nil
		}
		return l.readFile(ctx, p, chain)
	case value.Int, value.Float, value.Bool, value.Null, value.Blob, value.Array, value.Image:
		return x, nil
	default:
		return v, nil
	}
}
