package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
)

var _ audiograph.Node = (*Gate)(nil)

// Gate passes its single input through unchanged when open, and emits
// silence when closed. A Pulse toggles the open state; a Bool assigns it.
type Gate struct {
	IsOpen bool
}

// NewGate returns a Gate, closed by default.
func NewGate() *Gate { return &Gate{} }

func (g *Gate) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if !g.IsOpen || len(inputs) == 0 {
		out.Clear()
		return
	}
	*out = inputs[0]
}

func (g *Gate) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	*out = bang.Bang{}
	if len(inputs) == 0 {
		return
	}
	if inputs[0].IsPulse() {
		g.IsOpen = !g.IsOpen
		return
	}
	if v, ok := inputs[0].Bool(); ok {
		g.IsOpen = v
	}
}
