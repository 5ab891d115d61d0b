// Command enginedemo builds a small graph, streams it to a real audio
// device via go-sdl2, and exposes a Fyne control panel that mutates a
// live gain parameter from the controller thread while the audio thread
// keeps rendering blocks. This is the host-driver integration the core
// engine deliberately never owns.
package main

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/veandco/go-sdl2/sdl"

	"audiograph/internal/audiograph"
	"audiograph/internal/buffer"
	"audiograph/internal/debug"
	"audiograph/internal/mathutil"
	"audiograph/internal/nodes"
	"audiograph/internal/param"
	"audiograph/internal/sink"
)

const sampleRate = 48000

func main() {
	logger := debug.NewLogger(500)
	defer logger.Shutdown()
	logger.SetComponentEnabled(debug.ComponentAudioGraph, true)
	logger.SetComponentEnabled(debug.ComponentNode, true)

	ag := audiograph.New(4)
	gainCell := param.NewF32(0.3)

	osc, err := ag.AddNode(nodes.NewOscillator(440, sampleRate, mathutil.WaveSin))
	must(err)
	gain, err := ag.AddNode(nodes.NewLiveGain(gainCell))
	must(err)
	must(ag.AddEdge(osc, gain))
	ag.SetSinkIndex(gain)
	ag.SetLogger(logger)

	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize SDL: %v\n", err)
		os.Exit(1)
	}
	defer sdl.Quit()

	spec := sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: buffer.Channels,
		Samples:  buffer.BlockSize,
	}
	audioDev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open audio device: %v\n", err)
		os.Exit(1)
	}
	defer sdl.CloseAudioDevice(audioDev)
	sdl.PauseAudioDevice(audioDev, false)

	stop := make(chan struct{})
	go renderLoop(ag, audioDev, stop)

	fyneApp := app.New()
	window := fyneApp.NewWindow("audiograph demo")

	gainSlider := widget.NewSlider(0, 1)
	gainSlider.SetValue(float64(gainCell.Load()))
	gainSlider.OnChanged = func(v float64) {
		gainCell.Store(float32(v))
		logger.Logf(debug.ComponentController, debug.LevelInfo, "gain set to %.3f", v)
	}

	window.SetContent(container.NewVBox(
		widget.NewLabel("Gain"),
		gainSlider,
	))
	window.SetOnClosed(func() { close(stop) })
	window.ShowAndRun()
}

// renderLoop repeatedly renders a block and queues it to the audio device.
// It is the audio thread: the only code here that ever touches the graph
// after setup.
func renderLoop(ag *audiograph.AudioGraph, dev sdl.AudioDeviceID, stop <-chan struct{}) {
	var out [buffer.BlockSize * buffer.Channels]float32
	blockDuration := time.Second * buffer.BlockSize / sampleRate

	ticker := time.NewTicker(blockDuration)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame := ag.RenderBlock()
			sink.WriteInterleaved(frame, out[:])
			if err := sdl.QueueAudio(dev, floatsToBytes(out[:])); err != nil {
				continue
			}
		}
	}
}

// floatsToBytes reinterprets a []float32 as its little-endian byte
// representation for sdl.QueueAudio, matching AUDIO_F32's native layout.
func floatsToBytes(samples []float32) []byte {
	if len(samples) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*4)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
