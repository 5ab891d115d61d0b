package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
)

var _ audiograph.Node = (*Iter)(nil)

// Iter cycles through a fixed sequence of Bangs, advancing one position per
// incoming Pulse and wrapping back to the start at the end.
type Iter struct {
	Values []bang.Bang

	position int
}

// NewIter returns an Iter over values, starting at position 0.
func NewIter(values []bang.Bang) *Iter {
	return &Iter{Values: values}
}

func (i *Iter) Process(_ []buffer.Frame, out *buffer.Frame) { out.Clear() }

func (i *Iter) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	if len(inputs) == 0 || !inputs[0].IsPulse() || len(i.Values) == 0 {
		*out = bang.Bang{}
		return
	}
	*out = i.Values[i.position]
	if i.position < len(i.Values)-1 {
		i.position++
	} else {
		i.position = 0
	}
}
