package kauffman

import (
	"fmt"
	"log/slog"

	"github.com/nbertram/kauffman/internal/logging"
	"github.com/nbertram/kauffman/pkg/ports"
	"github.com/nbertram/kauffman/pkg/schedule"
)

// Runner drives a full run: a fixed number of synchronous transitions with
// evenly spaced disturbance events, handing every state vector to a sink.
// This keeps the run loop out of hosts (CLI, HTTP) so they only differ in
// where the frames go.
type Runner struct {
	// Steps is the number of transitions in the run.
	Steps int

	// Disturbances is the number of disturbance events, spread evenly
	// across the run (period = floor(Steps/(Disturbances+1))).
	Disturbances int

	// DisturbanceProbability is the per-node flip probability of each
	// event.
	DisturbanceProbability float64

	// Sink receives every state vector: the initial one as step 0, then
	// one per transition. May be nil to run for side effects only.
	Sink ports.FrameSink

	// Logger for run progress. Defaults to a no-op logger.
	Logger *slog.Logger
}

// Run executes the loop against a constructed network. Before each
// scheduled step it applies a disturbance, then transitions and emits the
// resulting vector.
func (r *Runner) Run(net *Network) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	sched, err := schedule.Times(r.Disturbances, r.Steps)
	if err != nil {
		return fmt.Errorf("disturbance schedule: %w", err)
	}
	if sched.Len() > 0 {
		logger.Info("disturbance schedule computed", "period", sched.Period(), "steps", sched.Steps())
	}

	if err := r.emit(0, net); err != nil {
		return err
	}
	for step := 1; step <= r.Steps; step++ {
		if sched.Contains(step) {
			logger.Info("introducing disturbance", "step", step, "probability", r.DisturbanceProbability)
			if err := net.IntroduceDisturbance(r.DisturbanceProbability); err != nil {
				return fmt.Errorf("step %d: %w", step, err)
			}
		}
		if err := net.TransitionState(); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := r.emit(step, net); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) emit(step int, net *Network) error {
	if r.Sink == nil {
		return nil
	}
	if err := r.Sink.WriteFrame(step, net.State()); err != nil {
		return fmt.Errorf("write frame %d: %w", step, err)
	}
	return nil
}
