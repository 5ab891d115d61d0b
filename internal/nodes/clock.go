package nodes

import (
	"math"

	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
)

var _ audiograph.Node = (*Clock)(nil)

// Clock emits a Pulse every tick_period_samples samples, advanced one
// block (N samples) at a time; it never fires at sub-block resolution.
// Input 0 starts/stops ticking (Pulse toggles, Bool assigns); input 1
// rewrites the tick period in seconds (F32 or U32).
type Clock struct {
	SampleRate        float64
	TickPeriodSamples float64
	IsTicking         bool
	samplesAccum      float64
}

// NewClock returns a Clock with the given tick period in seconds, stopped.
func NewClock(sampleRate, periodSeconds float64) *Clock {
	return &Clock{
		SampleRate:        sampleRate,
		TickPeriodSamples: math.Round(periodSeconds * sampleRate),
	}
}

func (c *Clock) Process(_ []buffer.Frame, out *buffer.Frame) { out.Clear() }

func (c *Clock) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	if len(inputs) > 0 {
		if inputs[0].IsPulse() {
			c.IsTicking = !c.IsTicking
		} else if v, ok := inputs[0].Bool(); ok {
			c.IsTicking = v
		}
	}
	if len(inputs) > 1 {
		if v, ok := inputs[1].F32(); ok {
			c.TickPeriodSamples = math.Round(float64(v) * c.SampleRate)
		} else if v, ok := inputs[1].U32(); ok {
			c.TickPeriodSamples = math.Round(float64(v) * c.SampleRate)
		}
	}

	if !c.IsTicking {
		*out = bang.Bang{}
		return
	}
	c.samplesAccum += float64(buffer.BlockSize)
	if c.samplesAccum >= c.TickPeriodSamples {
		c.samplesAccum -= c.TickPeriodSamples
		*out = bang.NewPulse()
		return
	}
	*out = bang.Bang{}
}
