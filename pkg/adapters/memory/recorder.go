// Package memory provides an in-memory FrameSink, the default sink for
// tests and for hosts that post-process a whole run at once.
package memory

import (
	"fmt"

	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/ports"
)

// Recorder captures every frame of a run in order.
type Recorder struct {
	frames []domain.StateVector
}

var _ ports.FrameSink = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// WriteFrame appends a frame. Steps must arrive in order starting at 0;
// anything else means the driving loop is broken.
func (r *Recorder) WriteFrame(step int, state domain.StateVector) error {
	if step != len(r.frames) {
		return fmt.Errorf("out-of-order frame: got step %d, expected %d", step, len(r.frames))
	}
	r.frames = append(r.frames, state)
	return nil
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frame returns the vector recorded at a step.
func (r *Recorder) Frame(step int) domain.StateVector {
	return r.frames[step]
}

// Frames returns the recorded run, oldest first. The slice is shared with
// the recorder; callers that mutate should clone.
func (r *Recorder) Frames() []domain.StateVector {
	return r.frames
}
