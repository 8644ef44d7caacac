package topology_test

import (
	"math/rand"
	"testing"

	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestUniformDirected_ExactEdgeCount(t *testing.T) {
	adj, err := topology.UniformDirected{}.Generate(newRand(), 20, 150)
	require.NoError(t, err)
	require.Equal(t, 20, adj.NumNodes())

	// Before cleanup the dependency entries are exactly the generated edges.
	assert.Equal(t, 150, adj.EdgeCount())

	// No duplicate ordered pairs: rebuild the edge set from the lists.
	seen := make(map[[2]int]bool)
	for dst, deps := range adj {
		for _, src := range deps {
			edge := [2]int{int(src), dst}
			assert.False(t, seen[edge], "duplicate edge %v", edge)
			seen[edge] = true
		}
	}
	assert.Len(t, seen, 150)
}

func TestUniformDirected_FullBudget(t *testing.T) {
	// E == N^2 forces every ordered pair to be found exactly once.
	adj, err := topology.UniformDirected{}.Generate(newRand(), 5, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, adj.EdgeCount())
	for _, deps := range adj {
		assert.Len(t, deps, 5)
	}
}

func TestUniformDirected_BudgetExceeded(t *testing.T) {
	_, err := topology.UniformDirected{}.Generate(newRand(), 5, 26)
	assert.ErrorIs(t, err, domain.ErrEdgeBudgetExceeded)
}

func TestUniformDirected_InvalidParameters(t *testing.T) {
	_, err := topology.UniformDirected{}.Generate(newRand(), 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = topology.UniformDirected{}.Generate(newRand(), 5, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestUniformDirected_ZeroEdgesCleanup(t *testing.T) {
	adj, err := topology.UniformDirected{}.Generate(newRand(), 8, 0)
	require.NoError(t, err)
	adj.Cleanup()

	for i, deps := range adj {
		require.Equal(t, []domain.NodeID{domain.NodeID(i)}, deps, "node %d should be self-dependent", i)
	}
}

func TestUniformUndirected_SymmetricLists(t *testing.T) {
	adj, err := topology.UniformUndirected{}.Generate(newRand(), 12, 30)
	require.NoError(t, err)

	// Every a->b entry has a matching b->a entry unless it is a self-loop.
	counts := func() map[[2]int]int {
		m := make(map[[2]int]int)
		for dst, deps := range adj {
			for _, src := range deps {
				m[[2]int{dst, int(src)}]++
			}
		}
		return m
	}()
	distinct := 0
	for edge, n := range counts {
		require.Equal(t, 1, n, "duplicate entry %v", edge)
		if edge[0] == edge[1] {
			distinct++
			continue
		}
		require.Equal(t, 1, counts[[2]int{edge[1], edge[0]}], "missing mirror of %v", edge)
	}
	// Non-self-loop edges contribute two mirrored entries, self-loops one.
	distinct += (len(counts) - distinct) / 2
	assert.Equal(t, 30, distinct)
}

func TestUniformUndirected_BudgetExceeded(t *testing.T) {
	// 4 nodes allow 4*5/2 = 10 distinct undirected edges.
	_, err := topology.UniformUndirected{}.Generate(newRand(), 4, 11)
	assert.ErrorIs(t, err, domain.ErrEdgeBudgetExceeded)

	_, err = topology.UniformUndirected{}.Generate(newRand(), 4, 10)
	assert.NoError(t, err)
}

func TestByName(t *testing.T) {
	g, err := topology.ByName("uniform-directed")
	require.NoError(t, err)
	assert.Equal(t, "uniform-directed", g.Name())

	g, err = topology.ByName("uniform-undirected")
	require.NoError(t, err)
	assert.Equal(t, "uniform-undirected", g.Name())

	_, err = topology.ByName("affinity")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a, err := topology.UniformDirected{}.Generate(rand.New(rand.NewSource(7)), 15, 60)
	require.NoError(t, err)
	b, err := topology.UniformDirected{}.Generate(rand.New(rand.NewSource(7)), 15, 60)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
