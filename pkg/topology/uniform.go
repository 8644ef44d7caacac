package topology

import (
	"math/rand"

	"github.com/nbertram/kauffman/pkg/domain"
)

func init() {
	Register(UniformDirected{})
	Register(UniformUndirected{})
}

// UniformDirected draws ordered (source, target) pairs uniformly and
// appends each new edge's source to the target's dependency list. Edges
// are deduplicated by ordered pair, so a->b and b->a are distinct; a
// self-loop counts as one edge. The representable budget is N².
//
// This is the default algorithm: nodes only know about their inputs, not
// who they feed.
type UniformDirected struct{}

func (UniformDirected) Name() string { return "uniform-directed" }

func (UniformDirected) Generate(rng *rand.Rand, numNodes, numEdges int) (domain.Adjacency, error) {
	if err := validateBudget(numNodes, numEdges, numNodes*numNodes); err != nil {
		return nil, err
	}

	adj := make(domain.Adjacency, numNodes)
	seen := make(map[[2]int]bool, numEdges)
	for len(seen) < numEdges {
		src := rng.Intn(numNodes)
		dst := rng.Intn(numNodes)
		edge := [2]int{src, dst}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		adj[dst] = append(adj[dst], domain.NodeID(src))
	}
	return adj, nil
}

// UniformUndirected draws node pairs uniformly and deduplicates by
// unordered pair: once a-b exists, b-a is a duplicate. Both endpoints gain
// the other as a dependency; a self-loop adds a single entry. The
// representable budget is N(N+1)/2.
type UniformUndirected struct{}

func (UniformUndirected) Name() string { return "uniform-undirected" }

func (UniformUndirected) Generate(rng *rand.Rand, numNodes, numEdges int) (domain.Adjacency, error) {
	if err := validateBudget(numNodes, numEdges, numNodes*(numNodes+1)/2); err != nil {
		return nil, err
	}

	adj := make(domain.Adjacency, numNodes)
	seen := make(map[[2]int]bool, numEdges)
	for len(seen) < numEdges {
		a := rng.Intn(numNodes)
		b := rng.Intn(numNodes)
		if a > b {
			a, b = b, a
		}
		edge := [2]int{a, b}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		adj[a] = append(adj[a], domain.NodeID(b))
		if a != b {
			adj[b] = append(adj[b], domain.NodeID(a))
		}
	}
	return adj, nil
}
