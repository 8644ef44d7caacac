package kauffman

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/nbertram/kauffman/internal/runtime"
	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/topology"
)

// Version is the current release of the kauffman module.
var Version = "0.4.1"

// Network is the high-level entry point for the kauffman library.
// It wraps the internal runtime and provides a simplified API for hosts.
type Network struct {
	runtime *runtime.Network

	generator  topology.Generator
	rng        *rand.Rand
	activation float64
	initial    float64
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
}

// Option defines a functional option for configuring a Network.
type Option func(*Network)

// WithSeed makes the whole construction and run reproducible: topology,
// rules, initialization and disturbances all draw from one source seeded
// with the given value.
func WithSeed(seed int64) Option {
	return func(n *Network) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit random source, taking precedence over
// WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(n *Network) {
		if rng != nil {
			n.rng = rng
		}
	}
}

// WithGenerator selects the edge-generation algorithm
// (default: topology.UniformDirected).
func WithGenerator(g topology.Generator) Option {
	return func(n *Network) {
		if g != nil {
			n.generator = g
		}
	}
}

// WithActivationProbability sets the probability that any given rule-table
// entry outputs on (default 0.5).
func WithActivationProbability(p float64) Option {
	return func(n *Network) {
		n.activation = p
	}
}

// WithInitialStateProbability sets the probability that a node starts on
// (default 0.5).
func WithInitialStateProbability(p float64) Option {
	return func(n *Network) {
		n.initial = p
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		n.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Network) {
		n.hooks = hooks
	}
}

func newFacade(opts []Option) *Network {
	n := &Network{
		generator:  topology.UniformDirected{},
		activation: 0.5,
		initial:    0.5,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return n
}

// New constructs a random boolean network: numEdges distinct edges among
// numNodes nodes, a random total rule per node sized to its in-degree, and
// a randomly initialized state vector. Fails with
// domain.ErrInvalidParameter for a non-positive node count, negative edge
// count or out-of-range probability, and with domain.ErrEdgeBudgetExceeded
// when numEdges exceeds what the algorithm can represent.
func New(numNodes, numEdges int, opts ...Option) (*Network, error) {
	n := newFacade(opts)

	adj, err := n.generator.Generate(n.rng, numNodes, numEdges)
	if err != nil {
		return nil, fmt.Errorf("generate topology: %w", err)
	}
	adj.Cleanup()

	rules, err := runtime.SynthesizeRules(n.rng, adj, n.activation)
	if err != nil {
		return nil, fmt.Errorf("synthesize rules: %w", err)
	}

	if err := n.assemble(adj, rules); err != nil {
		return nil, err
	}
	if err := n.runtime.InitializeState(n.initial); err != nil {
		return nil, fmt.Errorf("initialize state: %w", err)
	}
	return n, nil
}

// NewFromParts assembles a network from an explicit, cleaned adjacency
// relation and matching rule set, for experiments with hand-built wiring.
// The state vector starts all-off; call InitializeState or ResetState.
func NewFromParts(adj domain.Adjacency, rules []domain.Rule, opts ...Option) (*Network, error) {
	n := newFacade(opts)
	if err := n.assemble(adj, rules); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Network) assemble(adj domain.Adjacency, rules []domain.Rule) error {
	core, err := runtime.NewNetwork(adj, rules,
		runtime.WithRand(n.rng),
		runtime.WithLogger(n.logger),
		runtime.WithLifecycleHooks(n.hooks),
	)
	if err != nil {
		return fmt.Errorf("assemble network: %w", err)
	}
	n.runtime = core
	return nil
}

// InitializeState reseeds the state vector without rebuilding topology or
// rules: each node is set on with the given probability, independently.
func (n *Network) InitializeState(probability float64) error {
	return n.runtime.InitializeState(probability)
}

// ResetState replaces the state vector with an explicit one.
func (n *Network) ResetState(state domain.StateVector) error {
	return n.runtime.ResetState(state)
}

// TransitionState advances the network by one synchronous step.
func (n *Network) TransitionState() error {
	return n.runtime.TransitionState()
}

// IntroduceDisturbance flips each node's value with the given probability.
func (n *Network) IntroduceDisturbance(probability float64) error {
	return n.runtime.IntroduceDisturbance(probability)
}

// State returns a copy of the current state vector.
func (n *Network) State() domain.StateVector {
	return n.runtime.State()
}

// Topology returns a copy of the adjacency relation.
func (n *Network) Topology() domain.Adjacency {
	return n.runtime.Topology()
}

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int {
	return n.runtime.NumNodes()
}

// Steps returns the number of transitions since the last initialization.
func (n *Network) Steps() int {
	return n.runtime.Steps()
}

// Stats returns the total edge count (sum of dependency-list sizes) and
// the maximum in-degree. Read-only, no side effects.
func (n *Network) Stats() domain.Stats {
	return n.runtime.Stats()
}
