// Package config loads experiment definitions from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/topology"
)

// Experiment describes one full run: the network to build and how to
// drive it. Field names use mapstructure tags so the same struct decodes
// from YAML files and from generic JSON maps.
type Experiment struct {
	Nodes int `mapstructure:"nodes" json:"nodes"`
	Edges int `mapstructure:"edges" json:"edges"`

	// Topology names the edge-generation algorithm
	// (default "uniform-directed").
	Topology string `mapstructure:"topology" json:"topology,omitempty"`

	ActivationProbability   float64 `mapstructure:"activation_probability" json:"activation_probability,omitempty"`
	InitialStateProbability float64 `mapstructure:"initial_state_probability" json:"initial_state_probability,omitempty"`

	Steps                  int     `mapstructure:"steps" json:"steps"`
	Disturbances           int     `mapstructure:"disturbances" json:"disturbances,omitempty"`
	DisturbanceProbability float64 `mapstructure:"disturbance_probability" json:"disturbance_probability,omitempty"`

	// Seed makes the run reproducible. Zero means "pick one".
	Seed int64 `mapstructure:"seed" json:"seed,omitempty"`
}

// Default returns an experiment with the stock parameters: the probability
// defaults mirror a fair coin per rule entry and per initial bit; the
// disturbance probability only matters when Disturbances > 0.
func Default() Experiment {
	return Experiment{
		Topology:                topology.UniformDirected{}.Name(),
		ActivationProbability:   0.5,
		InitialStateProbability: 0.5,
		DisturbanceProbability:  0.2,
	}
}

// Load reads an experiment from a YAML file, applying defaults for absent
// keys. Unknown keys are rejected so typos fail loudly.
func Load(path string) (Experiment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("read experiment file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes into an experiment.
func Parse(raw []byte) (Experiment, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return Experiment{}, fmt.Errorf("parse experiment yaml: %w", err)
	}
	return FromMap(fields)
}

// FromMap decodes a generic key/value map into an experiment over the
// defaults. This is the common path for YAML files and HTTP request
// bodies.
func FromMap(fields map[string]any) (Experiment, error) {
	exp := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &exp,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Experiment{}, fmt.Errorf("build experiment decoder: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return Experiment{}, fmt.Errorf("decode experiment: %w", err)
	}
	if err := exp.Validate(); err != nil {
		return Experiment{}, err
	}
	return exp, nil
}

// Validate checks the run-level parameters and the topology name.
// Network-level parameters (node/edge counts, probabilities) are validated
// again at construction; this catches what only the run definition knows.
func (e Experiment) Validate() error {
	if e.Nodes <= 0 {
		return fmt.Errorf("%w: nodes must be positive, got %d", domain.ErrInvalidParameter, e.Nodes)
	}
	if e.Edges < 0 {
		return fmt.Errorf("%w: edges must be non-negative, got %d", domain.ErrInvalidParameter, e.Edges)
	}
	if e.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", domain.ErrInvalidParameter, e.Steps)
	}
	if e.Disturbances < 0 {
		return fmt.Errorf("%w: disturbances must be non-negative, got %d", domain.ErrInvalidParameter, e.Disturbances)
	}
	if _, err := topology.ByName(e.Topology); err != nil {
		return err
	}
	return nil
}

// Generator resolves the configured edge-generation algorithm.
func (e Experiment) Generator() (topology.Generator, error) {
	return topology.ByName(e.Topology)
}
