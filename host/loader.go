package host

import (
	"fmt"
	"os"

	"github.com/autosplit-dev/autosplit-sdk/application/scenario"
	apptemplate "github.com/autosplit-dev/autosplit-sdk/application/template"
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"github.com/autosplit-dev/autosplit-sdk/infrastructure/parser"
)

// loaderConfig holds configuration for the Loader.
type loaderConfig struct {
	validator       ports.ScenarioValidator
	templateEngine  ports.TemplateEngine
	parser          ports.ScenarioParser
	strictTemplates bool // Fail on missing template keys
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		parser:          parser.NewYamlScenarioParser(),
		validator:       scenario.NewValidator(),
		strictTemplates: true,
	}
}

// Loader orchestrates the scenario loading pipeline:
// render template, parse, validate.
type Loader struct {
	config loaderConfig
}

// LoaderOption configures the Loader.
type LoaderOption func(*loaderConfig)

// WithValidator replaces the scenario validator.
func WithValidator(v ports.ScenarioValidator) LoaderOption {
	return func(c *loaderConfig) {
		c.validator = v
	}
}

// WithParser sets a custom scenario parser.
func WithParser(p ports.ScenarioParser) LoaderOption {
	return func(c *loaderConfig) {
		c.parser = p
	}
}

// WithTemplateEngine sets a template engine.
func WithTemplateEngine(t ports.TemplateEngine) LoaderOption {
	return func(c *loaderConfig) {
		c.templateEngine = t
	}
}

// WithStrictTemplates enables/disables strict template mode.
// When enabled (default), template rendering fails if a referenced key is missing.
func WithStrictTemplates(enabled bool) LoaderOption {
	return func(c *loaderConfig) {
		c.strictTemplates = enabled
	}
}

// NewLoader creates a new Loader with defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.templateEngine == nil {
		cfg.templateEngine = apptemplate.NewRenderer(
			apptemplate.WithStrict(cfg.strictTemplates),
		)
	}

	return &Loader{config: cfg}
}

// LoadScenario renders, parses and validates a scenario.
func (l *Loader) LoadScenario(raw []byte, vars map[string]any) (*entities.Scenario, error) {
	data, err := l.config.templateEngine.Render(raw, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to render scenario: %w", err)
	}

	s, err := l.config.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if l.config.validator != nil {
		if err := l.config.validator.Validate(s); err != nil {
			return nil, fmt.Errorf("invalid scenario: %w", err)
		}
	}

	return s, nil
}

// LoadScenarioFile reads path and loads it with LoadScenario.
func (l *Loader) LoadScenarioFile(path string, vars map[string]any) (*entities.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return l.LoadScenario(raw, vars)
}
