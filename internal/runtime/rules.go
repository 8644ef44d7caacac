package runtime

import (
	"fmt"
	"math/rand"

	"github.com/nbertram/kauffman/pkg/domain"
)

// SynthesizeRules builds one random total rule per node. A node with
// in-degree k gets a table over all 2^k truth keys, each output set to on
// with the activation probability, independently. Executed once at
// construction; rules are never regenerated.
//
// The relation must already be cleaned: the self-loop policy for isolated
// nodes is what keeps every arity at 1 or more.
func SynthesizeRules(rng *rand.Rand, adj domain.Adjacency, activation float64) ([]domain.Rule, error) {
	if err := validateProbability("activation probability", activation); err != nil {
		return nil, err
	}

	rules := make([]domain.Rule, 0, adj.NumNodes())
	for i, deps := range adj {
		k := len(deps)
		if k == 0 {
			return nil, fmt.Errorf("%w: node %d has no dependencies (relation not cleaned)", domain.ErrInvalidParameter, i)
		}
		if k > domain.MaxArity {
			return nil, fmt.Errorf("%w: node %d in-degree %d exceeds maximum rule arity %d",
				domain.ErrInvalidParameter, i, k, domain.MaxArity)
		}

		outputs := make([]domain.Bit, 1<<k)
		for key := range outputs {
			if rng.Float64() < activation {
				outputs[key] = domain.On
			}
		}
		rule, err := domain.NewRule(k, outputs)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
