package nodes

import (
	"audiograph/internal/audiograph"
	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/mathutil"
)

var _ audiograph.Node = (*ADSR)(nil)

// Stage identifies which segment of the envelope is currently active.
type Stage int

const (
	Idle Stage = iota
	Attack
	Decay
	Sustain
	Release
)

// ADSR is an attack/decay/sustain/release envelope applied as a
// multiplicative gain on its single audio input. A Pulse triggers note-on
// when idle, note-off otherwise.
type ADSR struct {
	AttackTime   float64
	DecayTime    float64
	SustainTime  float64
	ReleaseTime  float64
	SustainLevel float32
	SampleRate   float64

	stage             Stage
	timeInStage       float64
	releaseStartLevel float32
}

// NewADSR returns an ADSR envelope in the Idle stage.
func NewADSR(attack, decay, sustain, release float64, sustainLevel float32, sampleRate float64) *ADSR {
	return &ADSR{
		AttackTime:   attack,
		DecayTime:    decay,
		SustainTime:  sustain,
		ReleaseTime:  release,
		SustainLevel: sustainLevel,
		SampleRate:   sampleRate,
	}
}

func (a *ADSR) currentLevel() float32 {
	switch a.stage {
	case Attack:
		t := a.timeInStage / a.AttackTime
		if t > 1 {
			t = 1
		}
		return float32(t)
	case Decay:
		t := a.timeInStage / a.DecayTime
		if t > 1 {
			t = 1
		}
		return float32(mathutil.Lerp(1, float64(a.SustainLevel), t))
	case Sustain:
		return a.SustainLevel
	case Release:
		t := a.timeInStage / a.ReleaseTime
		if t > 1 {
			t = 1
		}
		return a.releaseStartLevel * float32(1-t)
	default:
		return 0
	}
}

func (a *ADSR) noteOn() {
	a.stage = Attack
	a.timeInStage = 0
}

func (a *ADSR) noteOff() {
	a.releaseStartLevel = a.currentLevel()
	a.stage = Release
	a.timeInStage = 0
}

func (a *ADSR) advance() {
	a.timeInStage += 1 / a.SampleRate
	switch a.stage {
	case Attack:
		if a.timeInStage >= a.AttackTime {
			a.stage = Decay
			a.timeInStage = 0
		}
	case Decay:
		if a.timeInStage >= a.DecayTime {
			a.stage = Sustain
			if a.SustainTime > 0 {
				a.timeInStage = 0
			}
		}
	case Sustain:
		if a.SustainTime > 0 && a.timeInStage >= a.SustainTime {
			a.noteOff()
		}
	case Release:
		if a.timeInStage >= a.ReleaseTime {
			a.stage = Idle
			a.timeInStage = 0
		}
	}
}

func (a *ADSR) Process(inputs []buffer.Frame, out *buffer.Frame) {
	for n := range out[0] {
		level := a.currentLevel()
		for c := range out {
			var in float32
			if len(inputs) > 0 {
				in = inputs[0][c][n]
			}
			out[c][n] = in * level
		}
		a.advance()
	}
}

func (a *ADSR) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	*out = bang.Bang{}
	if len(inputs) == 0 || !inputs[0].IsPulse() {
		return
	}
	if a.stage == Idle {
		a.noteOn()
	} else {
		a.noteOff()
	}
}
