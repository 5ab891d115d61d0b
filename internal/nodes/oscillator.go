package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
)

var _ audiograph.Node = (*Oscillator)(nil)

// Oscillator is a free-running phase accumulator. It ignores all inputs and
// writes the same sample to every channel.
type Oscillator struct {
	Freq       float64
	SampleRate float64
	Wave       mathutil.Wave

	phase float64
}

// NewOscillator returns an Oscillator at the given frequency, sample rate,
// and waveshape, starting at phase 0.
func NewOscillator(freq, sampleRate float64, wave mathutil.Wave) *Oscillator {
	return &Oscillator{Freq: freq, SampleRate: sampleRate, Wave: wave}
}

func (o *Oscillator) Process(_ []buffer.Frame, out *buffer.Frame) {
	step := o.Freq / o.SampleRate
	for n := range out[0] {
		sample := mathutil.Shape(o.Wave, o.phase)
		for c := range out {
			out[c][n] = sample
		}
		o.phase += step
		if o.phase >= 1 {
			o.phase -= 1
		}
	}
}

func (o *Oscillator) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
