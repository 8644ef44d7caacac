package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbertram/kauffman/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine lifecycle events.
type Metrics struct {
	Transitions  prometheus.Counter
	Disturbances prometheus.Counter
	BitFlips     prometheus.Counter
	ActiveNodes  prometheus.Gauge
	ChangedNodes prometheus.Gauge
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer for the process-wide registry, or a private
// registry in tests and multi-run hosts.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kauffman_transitions_total",
			Help: "Total number of synchronous network transitions",
		}),
		Disturbances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kauffman_disturbances_total",
			Help: "Total number of disturbance events applied",
		}),
		BitFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kauffman_disturbance_flips_total",
			Help: "Total number of node states flipped by disturbances",
		}),
		ActiveNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kauffman_active_nodes",
			Help: "Number of nodes on after the most recent step",
		}),
		ChangedNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kauffman_changed_nodes",
			Help: "Number of nodes that changed value in the most recent step",
		}),
	}
	reg.MustRegister(m.Transitions, m.Disturbances, m.BitFlips, m.ActiveNodes, m.ChangedNodes)
	return m
}

// Hooks returns lifecycle hooks that record events into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(e *domain.InitializeEvent) {
			m.ActiveNodes.Set(float64(e.Active))
		},
		OnTransition: func(e *domain.TransitionEvent) {
			m.Transitions.Inc()
			m.ActiveNodes.Set(float64(e.Active))
			m.ChangedNodes.Set(float64(e.Changed))
		},
		OnDisturbance: func(e *domain.DisturbanceEvent) {
			m.Disturbances.Inc()
			m.BitFlips.Add(float64(e.Flipped))
		},
	}
}
