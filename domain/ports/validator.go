package ports

import "github.com/autosplit-dev/autosplit-sdk/domain/entities"

// ScenarioValidator checks a parsed Scenario before it is turned into a host.
type ScenarioValidator interface {
	// Validate returns a *errors.ConfigError describing the first problem.
	Validate(scenario *entities.Scenario) error
}
