package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
)

var _ audiograph.Node = (*HardClipper)(nil)

// HardClipper clamps its single input to [-limit, +limit].
type HardClipper struct {
	Limit float32
}

// NewHardClipper returns a HardClipper with the given limit. Returns
// ErrInvalidParameter if limit is outside [0, 1].
func NewHardClipper(limit float32) (*HardClipper, error) {
	if limit < 0 || limit > 1 {
		return nil, audiograph.ErrInvalidParameter
	}
	return &HardClipper{Limit: limit}, nil
}

func (h *HardClipper) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if len(inputs) == 0 {
		out.Clear()
		return
	}
	in := &inputs[0]
	for c := range out {
		for n := range out[c] {
			out[c][n] = mathutil.Clamp(in[c][n], -h.Limit, h.Limit)
		}
	}
}

func (h *HardClipper) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }
