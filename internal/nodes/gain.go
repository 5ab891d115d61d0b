// Package nodes holds the built-in processing nodes: the DSP vocabulary the
// graph is assembled from. Each type implements audiograph.Node directly.
package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
)

var _ audiograph.Node = (*Gain)(nil)

// Gain scales its single input by a fixed factor and clamps to [-1, 1].
type Gain struct {
	G float32
}

// NewGain returns a Gain node with the given factor.
func NewGain(g float32) *Gain { return &Gain{G: g} }

func (g *Gain) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if len(inputs) == 0 {
		out.Clear()
		return
	}
	in := &inputs[0]
	for c := range out {
		for n := range out[c] {
			out[c][n] = mathutil.Clamp(in[c][n]*g.G, -1, 1)
		}
	}
}

func (g *Gain) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
