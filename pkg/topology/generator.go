package topology

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/nbertram/kauffman/pkg/domain"
)

// Generator produces an adjacency relation among numNodes nodes containing
// exactly numEdges distinct edges. Implementations draw from the provided
// source so runs are reproducible; they never touch process-global
// randomness.
type Generator interface {
	Name() string
	Generate(rng *rand.Rand, numNodes, numEdges int) (domain.Adjacency, error)
}

var generators = map[string]Generator{}

// Register adds a generator to the lookup table used by ByName. The two
// uniform generators register themselves; experiments may add more.
func Register(g Generator) {
	if g == nil || g.Name() == "" {
		return
	}
	generators[g.Name()] = g
}

// ByName resolves a registered generator.
func ByName(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown topology algorithm %q (have %v)", domain.ErrInvalidParameter, name, Names())
	}
	return g, nil
}

// Names lists the registered generator names in stable order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateBudget(numNodes, numEdges, capacity int) error {
	if numNodes <= 0 {
		return fmt.Errorf("%w: numNodes must be positive, got %d", domain.ErrInvalidParameter, numNodes)
	}
	if numEdges < 0 {
		return fmt.Errorf("%w: numEdges must be non-negative, got %d", domain.ErrInvalidParameter, numEdges)
	}
	if numEdges > capacity {
		return fmt.Errorf("%w: %d edges requested but only %d distinct edges exist for %d nodes",
			domain.ErrEdgeBudgetExceeded, numEdges, capacity, numNodes)
	}
	return nil
}
