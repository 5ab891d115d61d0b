package audiograph

import (
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
)

// Node is the dual-domain processing contract every graph element
// implements. Either method may be a no-op. A node is the sole owner of
// its private DSP state; the only state it may share with other threads
// is a param cell (param.Bool, param.U32, param.F32) it explicitly holds.
type Node interface {
	// Process runs one block of audio-domain processing, reading the
	// gathered inputs (one Frame per incoming edge, in edge-insertion
	// order) and writing the node's persistent output Frame.
	Process(inputs []buffer.Frame, output *buffer.Frame)

	// HandleBang runs one block's worth of control-domain processing,
	// reading the gathered Bang inputs (clipped to MaxBangInputs) and
	// writing the node's outgoing Bang.
	HandleBang(inputs []bang.Bang, output *bang.Bang)
}
