package kauffman_test

import (
	"testing"

	"github.com/nbertram/kauffman"
	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		run  func() (*kauffman.Network, error)
	}{
		{"zero nodes", func() (*kauffman.Network, error) {
			return kauffman.New(0, 0)
		}},
		{"negative edges", func() (*kauffman.Network, error) {
			return kauffman.New(5, -1)
		}},
		{"activation above one", func() (*kauffman.Network, error) {
			return kauffman.New(5, 5, kauffman.WithActivationProbability(1.1))
		}},
		{"negative initial probability", func() (*kauffman.Network, error) {
			return kauffman.New(5, 5, kauffman.WithInitialStateProbability(-0.5))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.run()
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestNew_EdgeBudgetExceeded(t *testing.T) {
	_, err := kauffman.New(4, 17, kauffman.WithSeed(1))
	assert.ErrorIs(t, err, domain.ErrEdgeBudgetExceeded)
}

func TestNew_EveryNodeHasDependencies(t *testing.T) {
	net, err := kauffman.New(30, 10, kauffman.WithSeed(7))
	require.NoError(t, err)

	for i, deps := range net.Topology() {
		assert.NotEmpty(t, deps, "node %d has no dependencies", i)
	}
}

func TestNew_DeterministicForSeed(t *testing.T) {
	run := func() (domain.Adjacency, []domain.StateVector) {
		net, err := kauffman.New(20, 80, kauffman.WithSeed(1234))
		require.NoError(t, err)

		frames := []domain.StateVector{net.State()}
		for i := 0; i < 50; i++ {
			require.NoError(t, net.TransitionState())
			frames = append(frames, net.State())
		}
		return net.Topology(), frames
	}

	topoA, framesA := run()
	topoB, framesB := run()
	assert.Equal(t, topoA, topoB)
	assert.Equal(t, framesA, framesB)
}

func TestNew_UndirectedGenerator(t *testing.T) {
	net, err := kauffman.New(10, 20,
		kauffman.WithSeed(3),
		kauffman.WithGenerator(topology.UniformUndirected{}))
	require.NoError(t, err)

	// 20 undirected edges yield between 20 and 40 dependency entries
	// depending on how many are self-loops and how many isolated nodes
	// got a cleanup self-dependency.
	stats := net.Stats()
	assert.GreaterOrEqual(t, stats.TotalEdges, 20)
	assert.GreaterOrEqual(t, stats.MaxInDegree, 1)
}

func TestNewFromParts_StateLifecycle(t *testing.T) {
	copyRule, err := domain.NewRule(1, []domain.Bit{0, 1})
	require.NoError(t, err)

	net, err := kauffman.NewFromParts(
		domain.Adjacency{{1}, {0}},
		[]domain.Rule{copyRule, copyRule},
	)
	require.NoError(t, err)

	// Starts all-off until explicitly seeded.
	assert.Equal(t, domain.StateVector{0, 0}, net.State())
	assert.Equal(t, 0, net.Steps())

	require.NoError(t, net.ResetState(domain.StateVector{1, 0}))
	require.NoError(t, net.TransitionState())
	assert.Equal(t, domain.StateVector{0, 1}, net.State())
	assert.Equal(t, 1, net.Steps())

	assert.ErrorIs(t, net.ResetState(domain.StateVector{1}), domain.ErrInvalidParameter)
}

func TestState_ReturnsCopy(t *testing.T) {
	net, err := kauffman.New(5, 5, kauffman.WithSeed(9))
	require.NoError(t, err)

	state := net.State()
	state[0] = state[0].Flip()
	assert.NotEqual(t, state[0], net.State()[0])
}

func TestStats_MatchesTopology(t *testing.T) {
	net, err := kauffman.New(40, 400, kauffman.WithSeed(21))
	require.NoError(t, err)

	topo := net.Topology()
	stats := net.Stats()
	assert.Equal(t, topo.EdgeCount(), stats.TotalEdges)
	assert.Equal(t, topo.MaxInDegree(), stats.MaxInDegree)
	// Cleanup can only add entries on top of the 400 generated edges.
	assert.GreaterOrEqual(t, stats.TotalEdges, 400)
}
