package ports

import "github.com/nbertram/kauffman/pkg/domain"

// FrameSink consumes successive state vectors of a run, one frame per
// discrete time step. Step 0 is the initial vector; step i is the vector
// after the i-th transition. The vector handed to WriteFrame is the
// caller's copy and may be retained.
//
// A renderer turning frames into an image (one column per step, one row
// per node) is the canonical implementation, but the engine never assumes
// anything beyond this interface.
type FrameSink interface {
	WriteFrame(step int, state domain.StateVector) error
}

// FrameSinkFunc adapts a plain function to the FrameSink interface.
type FrameSinkFunc func(step int, state domain.StateVector) error

func (f FrameSinkFunc) WriteFrame(step int, state domain.StateVector) error {
	return f(step, state)
}
