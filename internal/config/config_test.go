package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nbertram/kauffman/internal/config"
	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	content := []byte(`
nodes: 40
edges: 400
topology: uniform-undirected
activation_probability: 0.3
initial_state_probability: 0.6
steps: 2000
disturbances: 4
disturbance_probability: 0.1
seed: 42
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	exp, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, exp.Nodes)
	assert.Equal(t, 400, exp.Edges)
	assert.Equal(t, "uniform-undirected", exp.Topology)
	assert.Equal(t, 0.3, exp.ActivationProbability)
	assert.Equal(t, 0.6, exp.InitialStateProbability)
	assert.Equal(t, 2000, exp.Steps)
	assert.Equal(t, 4, exp.Disturbances)
	assert.Equal(t, 0.1, exp.DisturbanceProbability)
	assert.Equal(t, int64(42), exp.Seed)

	gen, err := exp.Generator()
	require.NoError(t, err)
	assert.Equal(t, "uniform-undirected", gen.Name())
}

func TestParse_AppliesDefaults(t *testing.T) {
	exp, err := config.Parse([]byte("nodes: 10\nedges: 20\nsteps: 100\n"))
	require.NoError(t, err)

	assert.Equal(t, "uniform-directed", exp.Topology)
	assert.Equal(t, 0.5, exp.ActivationProbability)
	assert.Equal(t, 0.5, exp.InitialStateProbability)
	assert.Equal(t, 0.2, exp.DisturbanceProbability)
	assert.Equal(t, 0, exp.Disturbances)
	assert.Equal(t, int64(0), exp.Seed)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("nodes: 10\nedges: 20\nsteps: 100\nnode_count: 5\n"))
	assert.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero nodes", "nodes: 0\nedges: 5\nsteps: 10\n"},
		{"negative edges", "nodes: 5\nedges: -1\nsteps: 10\n"},
		{"zero steps", "nodes: 5\nedges: 5\nsteps: 0\n"},
		{"negative disturbances", "nodes: 5\nedges: 5\nsteps: 10\ndisturbances: -1\n"},
		{"unknown topology", "nodes: 5\nedges: 5\nsteps: 10\ntopology: affinity\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestFromMap_WeakTyping(t *testing.T) {
	// JSON decoding yields float64 for every number; the decoder must
	// accept them for the int fields.
	exp, err := config.FromMap(map[string]any{
		"nodes": float64(12),
		"edges": float64(30),
		"steps": float64(50),
		"seed":  float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, exp.Nodes)
	assert.Equal(t, int64(7), exp.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
