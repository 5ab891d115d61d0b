package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/debug"
)

var _ audiograph.Node = (*Log)(nil)

// Log writes a diagnostic line for every non-Empty Bang at its input 0,
// via a non-blocking Logger call, while debug.ComponentNode is enabled on
// its Logger, and otherwise passes its audio input through unchanged. With
// ComponentNode disabled, HandleBang does not allocate.
type Log struct {
	Logger *debug.Logger
	Level  debug.Level
	Label  string
}

// NewLog returns a Log node reporting to logger under the given label.
func NewLog(logger *debug.Logger, level debug.Level, label string) *Log {
	return &Log{Logger: logger, Level: level, Label: label}
}

func (l *Log) Process(inputs []buffer.Frame, out *buffer.Frame) {
	if len(inputs) == 0 {
		out.Clear()
		return
	}
	*out = inputs[0]
}

func (l *Log) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	*out = bang.Bang{}
	if len(inputs) == 0 || inputs[0].IsEmpty() || l.Logger == nil {
		return
	}
	// Checked here, before the variadic arguments below are boxed.
	if !l.Logger.IsComponentEnabled(debug.ComponentNode) {
		return
	}
	l.Logger.LogNodef(l.Level, "%s: bang kind=%v", l.Label, inputs[0].Kind())
}
