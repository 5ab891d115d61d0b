package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
)

var _ audiograph.Node = (*Mixer)(nil)

// Mixer averages every incoming frame elementwise and clamps to [-1, 1].
// With zero inputs it emits silence rather than dividing by zero.
type Mixer struct{}

// NewMixer returns a Mixer node.
func NewMixer() *Mixer { return &Mixer{} }

func (m *Mixer) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if len(inputs) == 0 {
		out.Clear()
		return
	}
	count := float32(len(inputs))
	for c := range out {
		for n := range out[c] {
			var sum float32
			for i := range inputs {
				sum += inputs[i][c][n]
			}
			out[c][n] = mathutil.Clamp(sum/count, -1, 1)
		}
	}
}

func (m *Mixer) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
