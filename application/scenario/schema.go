package scenario

import (
	"github.com/autosplit-dev/autosplit-sdk/application/schema"
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

// Schema returns the JSON schema of scenario files.
func Schema() ([]byte, error) {
	return schema.GenerateSchema(&entities.Scenario{},
		schema.WithTitle("Autosplitter scenario"),
		schema.WithDescription("Simulated processes, timer setup and a per-tick script for the reference host."),
	)
}
