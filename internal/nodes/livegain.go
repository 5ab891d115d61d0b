package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
	"audiograph/internal/param"
)

var _ audiograph.Node = (*LiveGain)(nil)

// LiveGain is Gain backed by a param.F32 cell instead of a plain field, so
// a controller thread can rewrite the factor while the audio thread is
// mid-stream without any locking.
type LiveGain struct {
	G param.F32
}

// NewLiveGain returns a LiveGain node sharing cell with its caller; both
// sides read and write through the same atomic word.
func NewLiveGain(cell param.F32) *LiveGain { return &LiveGain{G: cell} }

func (g *LiveGain) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if len(inputs) == 0 {
		out.Clear()
		return
	}
	in := &inputs[0]
	factor := g.G.Load()
	for c := range out {
		for n := range out[c] {
			out[c][n] = mathutil.Clamp(in[c][n]*factor, -1, 1)
		}
	}
}

func (g *LiveGain) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
