// Package log provides structured logging (slog) for autosplitters running
// inside the host's WASM runtime. Records are rendered as a single line and
// handed to the host's message printer.
package log

import (
	"context"
	"log/slog"
	"slices"
)

// Printer receives one fully formatted log line.
type Printer func(line string)

// WasmLogHandler implements slog.Handler to route logs through a host function.
type WasmLogHandler struct {
	opts   handlerConfig
	attrs  []slog.Attr
	groups []string
}

// HandlerOption configures the WasmLogHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	printer   Printer
	level     slog.Level
	addSource bool
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:   slog.LevelInfo,
		printer: defaultPrinter,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level will be filtered on the guest side.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithPrinter replaces the destination of formatted lines.
func WithPrinter(p Printer) HandlerOption {
	return func(c *handlerConfig) {
		if p != nil {
			c.printer = p
		}
	}
}

// NewHandler creates a new WasmLogHandler with the given options.
func NewHandler(opts ...HandlerOption) *WasmLogHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &WasmLogHandler{opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *WasmLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle formats the record and passes it to the printer.
func (h *WasmLogHandler) Handle(_ context.Context, record slog.Record) error {
	h.opts.printer(h.format(record))
	return nil
}

// WithAttrs returns a new WasmLogHandler that includes the given attributes.
func (h *WasmLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := groupPrefix(h.groups)
	newHandler := h.clone()
	for _, a := range attrs {
		a.Key = prefix + a.Key
		newHandler.attrs = append(newHandler.attrs, a)
	}
	return newHandler
}

// WithGroup returns a new WasmLogHandler with the given group name.
func (h *WasmLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newHandler := h.clone()
	newHandler.groups = append(newHandler.groups, name)
	return newHandler
}

func (h *WasmLogHandler) clone() *WasmLogHandler {
	return &WasmLogHandler{
		opts:   h.opts,
		attrs:  slices.Clone(h.attrs),
		groups: slices.Clone(h.groups),
	}
}
