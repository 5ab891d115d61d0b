// Package sink bridges the graph's sink Frame to the host's interleaved
// audio buffer, performing the one allowed sample-type conversion at the
// boundary between the engine and the driver.
package sink

import "audiograph/internal/buffer"

// Sample is any numeric type a host interleaved buffer may be made of.
// float32 matches go-sdl2's AUDIO_F32 queue format; int16 matches
// AUDIO_S16, scaled through Int16Scale.
type Sample interface {
	~float32 | ~float64 | ~int16 | ~int32
}

// Int16Scale is the full-scale magnitude used when converting a [-1,1]
// sample to int16 PCM.
const Int16Scale = 32767

// WriteInterleaved copies frame into dst at interleaved index i = n*C+c,
// converting each sample to T. dst must have length exactly
// buffer.BlockSize*buffer.Channels; this performs no allocation.
func WriteInterleaved[T Sample](frame *buffer.Frame, dst []T) {
	for n := 0; n < buffer.BlockSize; n++ {
		for c := 0; c < buffer.Channels; c++ {
			dst[n*buffer.Channels+c] = convert[T](frame[c][n])
		}
	}
}

func convert[T Sample](v float32) T {
	var zero T
	switch any(zero).(type) {
	case int16, int32:
		return T(v * Int16Scale)
	default:
		return T(v)
	}
}
