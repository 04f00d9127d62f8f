// Package schema provides JSON schema generation utilities for the SDK.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

type generatorConfig struct {
	title       string
	description string
	anonymous   bool
}

// Option configures GenerateSchema.
type Option func(*generatorConfig)

// WithTitle sets the top-level "title" keyword.
func WithTitle(title string) Option {
	return func(c *generatorConfig) {
		c.title = title
	}
}

// WithDescription sets the top-level "description" keyword.
func WithDescription(desc string) Option {
	return func(c *generatorConfig) {
		c.description = desc
	}
}

// WithID keeps the "$id" keyword derived from the Go package path.
func WithID(enabled bool) Option {
	return func(c *generatorConfig) {
		c.anonymous = !enabled
	}
}

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v any, opts ...Option) ([]byte, error) {
	cfg := generatorConfig{anonymous: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand the root struct inline
		Anonymous:      cfg.anonymous,
	}
	schema := reflector.Reflect(v)
	if cfg.title != "" {
		schema.Title = cfg.title
	}
	if cfg.description != "" {
		schema.Description = cfg.description
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}
