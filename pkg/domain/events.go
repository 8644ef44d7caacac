package domain

// EventType defines the category of the event.
type EventType string

const (
	EventInitialize  EventType = "initialize"
	EventTransition  EventType = "transition"
	EventDisturbance EventType = "disturbance"
)

// InitializeEvent is emitted when a state vector is (re)seeded.
type InitializeEvent struct {
	Probability float64 `json:"probability"`
	Active      int     `json:"active"`
}

// TransitionEvent is emitted after each synchronous step.
type TransitionEvent struct {
	Step    int `json:"step"`    // 1-based count of transitions since initialization
	Active  int `json:"active"`  // nodes on after the step
	Changed int `json:"changed"` // nodes whose value differs from the prior step
}

// DisturbanceEvent is emitted after an exogenous perturbation.
type DisturbanceEvent struct {
	Probability float64 `json:"probability"`
	Flipped     int     `json:"flipped"`
}

// LifecycleHooks defines callbacks for engine observability. Any hook may
// be nil. Hooks run synchronously on the calling goroutine, so they must
// not block.
type LifecycleHooks struct {
	OnInitialize  func(*InitializeEvent)
	OnTransition  func(*TransitionEvent)
	OnDisturbance func(*DisturbanceEvent)
}
