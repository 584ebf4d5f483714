package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazeltet845/cmssw/beamspot"
)

// GeneratorParams is the static configuration of the vertex generator.
// Lengths are in cm, angles in radians and TimeOffset in ns.
type GeneratorParams struct {
	beamspot.Raw `yaml:",inline"`

	// ReadDB ignores the values above and takes the beam spot from the
	// conditions database instead.
	ReadDB bool `yaml:"readDB" json:"readDB"`
}

// DefaultGeneratorParams every parameter defaults to zero.
var DefaultGeneratorParams = GeneratorParams{}

// LoadGeneratorParams reads and parses a YAML (or JSON) parameter file.
func LoadGeneratorParams(path string) (GeneratorParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GeneratorParams{}, fmt.Errorf("read generator params: %w", err)
	}
	return ParseGeneratorParams(data)
}

// ParseGeneratorParams parses a YAML (or JSON) parameter document.
func ParseGeneratorParams(data []byte) (GeneratorParams, error) {
	params := DefaultGeneratorParams
	if err := yaml.Unmarshal(data, &params); err != nil {
		return GeneratorParams{}, fmt.Errorf("parse generator params: %w", err)
	}
	return params, nil
}
