package domain

import "errors"

// ErrInvalidParameter is returned when a network is constructed with a
// non-positive node count, a negative edge count, or a probability outside
// [0, 1].
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrEdgeBudgetExceeded is returned when a topology generator is asked for
// more distinct edges than the node count can represent.
var ErrEdgeBudgetExceeded = errors.New("edge budget exceeded")

// ErrInternalConsistency is returned when a computed truth key has no entry
// in its rule table. It indicates a construction bug; a network that
// produced it is unsafe to keep using.
var ErrInternalConsistency = errors.New("internal consistency violation")
