// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otelslog provides a OpenTelemetry aware slog.Handler implementation.
package otelslog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Handler correlates log records with the span active on the logging
// context by adding its trace and span ids under an "otel" group.
type Handler struct {
	slog slog.Handler
}

// NewHandler wraps h.
func NewHandler(h slog.Handler) *Handler {
	return &Handler{slog: h}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return h.slog.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(slog.Group(
		"otel",
		slog.String("trace_id", spanCtx.TraceID().String()),
		slog.String("span_id", spanCtx.SpanID().String()),
	))
	return h.slog.Handle(ctx, r)
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.slog.WithAttrs(attrs))
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.slog.WithGroup(name))
}
