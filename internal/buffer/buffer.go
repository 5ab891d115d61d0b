// Package buffer holds the leaf value types every node in the graph trades
// in: a fixed-size block of mono samples, and a fixed-channel stack of them.
package buffer

// BlockSize is the number of samples per channel rendered by one call to
// AudioGraph.RenderBlock. It is a compile-time constant for the whole
// binary: the engine never resizes a stream mid-flight.
const BlockSize = 512

// Channels is the number of channels carried by every Frame in the graph.
const Channels = 2

// Buffer is a block of BlockSize single-precision samples for one channel.
// The zero value is silence. Buffer is a plain array so copying it never
// allocates or touches the heap.
type Buffer [BlockSize]float32

// Frame is a BlockSize-sample, Channels-channel bundle: Frame[c][n] is
// sample n of channel c. Channel 0 is always the first element.
type Frame [Channels]Buffer

// Silent reports whether every sample of every channel is exactly zero.
func (f *Frame) Silent() bool {
	for c := range f {
		for n := range f[c] {
			if f[c][n] != 0 {
				return false
			}
		}
	}
	return true
}

// Clear resets every sample of the frame to zero in place.
func (f *Frame) Clear() {
	for c := range f {
		f[c] = Buffer{}
	}
}
