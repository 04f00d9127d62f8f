package ports

import "github.com/autosplit-dev/autosplit-sdk/domain/entities"

// ScenarioParser parses raw bytes into a reference host Scenario.
type ScenarioParser interface {
	// Parse unmarshals the bytes into a Scenario struct.
	Parse(data []byte) (*entities.Scenario, error)
}
