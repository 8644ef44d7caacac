package cli

import (
	"encoding/json"
	"io"

	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/ports"
)

// Frame is the NDJSON wire form of one time step.
type Frame struct {
	Step  int   `json:"step"`
	State []int `json:"state"`
}

// FrameWriter is a FrameSink that streams frames as NDJSON, one object per
// line. This is the CLI's sink: columns of an eventual bitmap leave the
// process as data, and rendering stays someone else's job.
type FrameWriter struct {
	enc *json.Encoder
}

var _ ports.FrameSink = (*FrameWriter)(nil)

// NewFrameWriter creates a writer emitting to out.
func NewFrameWriter(out io.Writer) *FrameWriter {
	return &FrameWriter{enc: json.NewEncoder(out)}
}

func (w *FrameWriter) WriteFrame(step int, state domain.StateVector) error {
	return w.enc.Encode(EncodeFrame(step, state))
}

// EncodeFrame converts a state vector to its wire form. Bits become plain
// ints; a byte slice would JSON-encode as base64.
func EncodeFrame(step int, state domain.StateVector) Frame {
	values := make([]int, len(state))
	for i, b := range state {
		values[i] = int(b)
	}
	return Frame{Step: step, State: values}
}
