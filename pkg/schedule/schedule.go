// Package schedule spaces disturbance events evenly across a run.
package schedule

import (
	"fmt"

	"github.com/nbertram/kauffman/pkg/domain"
)

// Schedule is the precomputed set of step indices at which a disturbance
// fires. It is computed once before a run and checked by membership each
// step.
type Schedule struct {
	period int
	times  map[int]bool
}

// Times computes the schedule for numDisturbances events across a run of
// numSteps transitions: period = floor(numSteps/(numDisturbances+1)), with
// event i (1-based) at step i*period. Zero disturbances yield an empty
// schedule. The schedule must fit strictly inside the run, so a period of
// zero (more events than steps can hold) is rejected.
func Times(numDisturbances, numSteps int) (*Schedule, error) {
	if numDisturbances < 0 {
		return nil, fmt.Errorf("%w: numDisturbances must be non-negative, got %d", domain.ErrInvalidParameter, numDisturbances)
	}
	if numSteps <= 0 {
		return nil, fmt.Errorf("%w: numSteps must be positive, got %d", domain.ErrInvalidParameter, numSteps)
	}
	if numDisturbances == 0 {
		return &Schedule{}, nil
	}

	period := numSteps / (numDisturbances + 1)
	if period == 0 {
		return nil, fmt.Errorf("%w: %d disturbances do not fit in %d steps", domain.ErrInvalidParameter, numDisturbances, numSteps)
	}

	times := make(map[int]bool, numDisturbances)
	for i := 1; i <= numDisturbances; i++ {
		times[i*period] = true
	}
	return &Schedule{period: period, times: times}, nil
}

// Period returns the spacing between events, or 0 for an empty schedule.
func (s *Schedule) Period() int {
	return s.period
}

// Len returns the number of scheduled events.
func (s *Schedule) Len() int {
	return len(s.times)
}

// Contains reports whether a disturbance fires at the given step.
func (s *Schedule) Contains(step int) bool {
	return s.times[step]
}

// Steps returns the scheduled step indices in ascending order.
func (s *Schedule) Steps() []int {
	out := make([]int, 0, len(s.times))
	for i := 1; i <= len(s.times); i++ {
		out = append(out, i*s.period)
	}
	return out
}
