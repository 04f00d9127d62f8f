// Package template renders scenario files before they are parsed, so one
// file can describe several builds or memory layouts of a game.
//
// Variables are reachable as {{.vars.name}}. Two helpers cover address
// arithmetic, which is most of what scenarios template:
//
//	address: {{ offset .vars.base "0x100" }}
//	value:   {{ hex 314 }}
package template

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
)

var _ ports.TemplateEngine = (*Renderer)(nil)

// Renderer renders scenario templates with text/template.
type Renderer struct {
	name   string
	strict bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithStrict controls what a reference to an unset variable does. Strict
// renderers (the default) fail; lenient ones print "<no value>".
func WithStrict(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.strict = enabled
	}
}

// WithName sets the template name shown in parse and execution errors.
func WithName(name string) RendererOption {
	return func(r *Renderer) {
		if name != "" {
			r.name = name
		}
	}
}

// NewRenderer returns a strict renderer named "scenario".
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{name: "scenario", strict: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements ports.TemplateEngine.
func (r *Renderer) Render(raw []byte, vars map[string]any) ([]byte, error) {
	tmpl := template.New(r.name).Funcs(template.FuncMap{
		"offset": offset,
		"hex":    hex,
	})
	if r.strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario template: %w", err)
	}

	if vars == nil {
		vars = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"vars": vars}); err != nil {
		return nil, fmt.Errorf("failed to render scenario template: %w", err)
	}
	return buf.Bytes(), nil
}

// offset adds off to base and formats the result as hex. Both accept Go
// integer literals, as strings or numbers; off may be negative.
func offset(base, off any) (string, error) {
	b, err := parseUint(base)
	if err != nil {
		return "", err
	}
	o, err := strconv.ParseInt(fmt.Sprint(off), 0, 64)
	if err != nil {
		return "", fmt.Errorf("offset: invalid offset %v", off)
	}
	return fmt.Sprintf("%#x", b+uint64(o)), nil //nolint:gosec // G115: wrapping is intended
}

func hex(v any) (string, error) {
	n, err := parseUint(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%#x", n), nil
}

func parseUint(v any) (uint64, error) {
	n, err := strconv.ParseUint(fmt.Sprint(v), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %v", v)
	}
	return n, nil
}
