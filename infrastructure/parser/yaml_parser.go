// Package parser decodes scenario files.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlScenarioParser implements ScenarioParser for YAML.
// Unknown fields are rejected so typos do not silently change a scenario.
type YamlScenarioParser struct{}

// NewYamlScenarioParser creates a new YamlScenarioParser.
func NewYamlScenarioParser() ports.ScenarioParser {
	return &YamlScenarioParser{}
}

// Parse unmarshals the first YAML document in data into a Scenario.
func (p *YamlScenarioParser) Parse(data []byte) (*entities.Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scenario entities.Scenario
	if err := dec.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, err
	}
	return &scenario, nil
}
