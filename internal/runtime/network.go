// Package runtime implements the network state machine: topology plus
// per-node rules plus the current state vector, advanced by synchronous
// transitions and perturbed by disturbances.
package runtime

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/nbertram/kauffman/internal/logging"
	"github.com/nbertram/kauffman/pkg/domain"
)

// Network owns an adjacency relation, one rule per node, and the current
// state vector. Topology and rules are fixed for the object's lifetime;
// only the state vector changes, and it is always replaced wholesale.
type Network struct {
	adj   domain.Adjacency
	rules []domain.Rule
	state domain.StateVector

	rng    *rand.Rand
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	steps  int
}

// Option configures a Network.
type Option func(*Network)

// WithRand sets the random source used by InitializeState and
// IntroduceDisturbance. Defaults to a time-seeded source; tests should
// always inject a seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(n *Network) {
		n.rng = rng
	}
}

// WithLogger sets a structured logger for step-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Network) {
		n.hooks = hooks
	}
}

// NewNetwork assembles a network from an explicit relation and rule set.
// The relation must be cleaned (no empty dependency lists) and every rule's
// arity must match its node's dependency-list size; a mismatch here would
// surface later as an internal consistency violation, so it is rejected
// up front. The initial state vector is all-off until InitializeState or
// ResetState is called.
func NewNetwork(adj domain.Adjacency, rules []domain.Rule, opts ...Option) (*Network, error) {
	numNodes := adj.NumNodes()
	if numNodes <= 0 {
		return nil, fmt.Errorf("%w: network needs at least one node", domain.ErrInvalidParameter)
	}
	if len(rules) != numNodes {
		return nil, fmt.Errorf("%w: %d rules for %d nodes", domain.ErrInvalidParameter, len(rules), numNodes)
	}
	for i, deps := range adj {
		if len(deps) == 0 {
			return nil, fmt.Errorf("%w: node %d has no dependencies (relation not cleaned)", domain.ErrInvalidParameter, i)
		}
		for _, dep := range deps {
			if dep < 0 || int(dep) >= numNodes {
				return nil, fmt.Errorf("%w: node %d depends on out-of-range node %d", domain.ErrInvalidParameter, i, dep)
			}
		}
		if rules[i].Arity() != len(deps) {
			return nil, fmt.Errorf("%w: node %d rule arity %d does not match in-degree %d",
				domain.ErrInvalidParameter, i, rules[i].Arity(), len(deps))
		}
	}

	n := &Network{
		adj:    adj,
		rules:  rules,
		state:  make(domain.StateVector, numNodes),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return n, nil
}

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int {
	return n.adj.NumNodes()
}

// Steps returns the number of transitions since the last initialization.
func (n *Network) Steps() int {
	return n.steps
}

// State returns a copy of the current state vector.
func (n *Network) State() domain.StateVector {
	return n.state.Clone()
}

// Topology returns a copy of the adjacency relation.
func (n *Network) Topology() domain.Adjacency {
	return n.adj.Clone()
}

// Stats returns the total edge count and maximum in-degree.
func (n *Network) Stats() domain.Stats {
	return n.adj.Stats()
}

// InitializeState seeds a fresh state vector: each node is on with the
// given probability, independently. Callable at construction time and to
// restart a run without rebuilding topology or rules.
func (n *Network) InitializeState(probability float64) error {
	if err := validateProbability("initial state probability", probability); err != nil {
		return err
	}

	next := make(domain.StateVector, n.adj.NumNodes())
	for i := range next {
		next[i] = n.bernoulli(probability)
	}
	n.state = next
	n.steps = 0

	active := next.ActiveCount()
	n.logger.Debug("state initialized", "probability", probability, "active", active)
	if n.hooks.OnInitialize != nil {
		n.hooks.OnInitialize(&domain.InitializeEvent{Probability: probability, Active: active})
	}
	return nil
}

// ResetState replaces the state vector with an explicit one, for replaying
// a known configuration.
func (n *Network) ResetState(state domain.StateVector) error {
	if len(state) != n.adj.NumNodes() {
		return fmt.Errorf("%w: state vector has %d entries, network has %d nodes",
			domain.ErrInvalidParameter, len(state), n.adj.NumNodes())
	}
	n.state = state.Clone()
	n.steps = 0
	return nil
}

// TransitionState advances the network by one synchronous step. Every node
// reads the frozen pre-step vector for its dependency list, in list order,
// and stages its rule's output; the staged vector is published only after
// all nodes are done, so no node ever observes a neighbor's new value
// within the same step.
//
// A truth key missing from its rule table means construction was broken;
// the error is fatal and the network must not be used afterwards.
func (n *Network) TransitionState() error {
	prev := n.state
	next := make(domain.StateVector, len(prev))
	inputs := make([]domain.Bit, 0, n.adj.MaxInDegree())

	for i, deps := range n.adj {
		inputs = inputs[:0]
		for _, dep := range deps {
			inputs = append(inputs, prev[dep])
		}
		out, err := n.rules[i].Output(domain.EncodeKey(inputs))
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		next[i] = out
	}

	changed := 0
	for i, b := range next {
		if prev[i] != b {
			changed++
		}
	}
	n.state = next
	n.steps++

	if n.hooks.OnTransition != nil {
		n.hooks.OnTransition(&domain.TransitionEvent{
			Step:    n.steps,
			Active:  next.ActiveCount(),
			Changed: changed,
		})
	}
	return nil
}

// IntroduceDisturbance flips each node's current value with the given
// probability, independently. Rules are not consulted: this models an
// exogenous perturbation used to probe attractor stability.
func (n *Network) IntroduceDisturbance(probability float64) error {
	if err := validateProbability("disturbance probability", probability); err != nil {
		return err
	}

	next := n.state.Clone()
	flipped := 0
	for i, b := range next {
		if n.bernoulli(probability) == domain.On {
			next[i] = b.Flip()
			flipped++
		}
	}
	n.state = next

	n.logger.Debug("disturbance introduced", "probability", probability, "flipped", flipped)
	if n.hooks.OnDisturbance != nil {
		n.hooks.OnDisturbance(&domain.DisturbanceEvent{Probability: probability, Flipped: flipped})
	}
	return nil
}

func (n *Network) bernoulli(probability float64) domain.Bit {
	if n.rng.Float64() < probability {
		return domain.On
	}
	return domain.Off
}

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s %v outside [0, 1]", domain.ErrInvalidParameter, name, p)
	}
	return nil
}
