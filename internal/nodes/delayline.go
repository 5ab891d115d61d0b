package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
)

var _ audiograph.Node = (*DelayLine)(nil)

// ring is a fixed-capacity, preallocated circular buffer of samples,
// preinitialised to zero. pop removes the oldest sample and push appends
// the newest one; the two are always used as a pair so capacity never
// changes after construction.
type ring struct {
	buf  []float32
	head int
}

func newRing(length int) ring {
	return ring{buf: make([]float32, length)}
}

// popPush removes the oldest sample, writes in as the newest, and returns
// the removed sample. For a zero-length ring it is the identity.
func (r *ring) popPush(in float32) float32 {
	if len(r.buf) == 0 {
		return in
	}
	out := r.buf[r.head]
	r.buf[r.head] = in
	r.head = (r.head + 1) % len(r.buf)
	return out
}

// DelayLine delays its single input by LenSamples samples, per channel, in
// lockstep across channels.
type DelayLine struct {
	LenSamples int

	lines [buffer.Channels]ring
}

// NewDelayLine returns a DelayLine of the given length, preinitialised to
// silence.
func NewDelayLine(lenSamples int) *DelayLine {
	d := &DelayLine{LenSamples: lenSamples}
	for c := range d.lines {
		d.lines[c] = newRing(lenSamples)
	}
	return d
}

func (d *DelayLine) Process(inputs []buffer.Frame, out *buffer.Frame) {
	for c := range out {
		for n := range out[c] {
			var in float32
			if len(inputs) > 0 {
				in = inputs[0][c][n]
			}
			out[c][n] = d.lines[c].popPush(in)
		}
	}
}

func (d *DelayLine) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
