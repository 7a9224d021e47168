package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a parameter bundle from a YAML file. Deployments that
// retrain the model ship a new file instead of a new binary.
func LoadFile(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a parameter bundle from YAML bytes and validates it.
func Parse(data []byte) (*Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse model bundle: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
