package nodes

import (
	"testing"
	"time"

	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/debug"
)

func TestLogPassesAudioThrough(t *testing.T) {
	l := NewLog(nil, debug.LevelInfo, "test")
	var in, out buffer.Frame
	in[0][0] = 0.25
	l.Process([]buffer.Frame{in}, &out)
	if out[0][0] != 0.25 {
		t.Fatalf("expected pass-through, got %f", out[0][0])
	}
}

func TestLogEmitsEntryOnNonEmptyBang(t *testing.T) {
	logger := debug.NewLogger(100)
	defer logger.Shutdown()
	logger.SetComponentEnabled(debug.ComponentNode, true)

	l := NewLog(logger, debug.LevelInfo, "gate")
	var out bang.Bang
	l.HandleBang([]bang.Bang{bang.NewPulse()}, &out)

	deadline := time.Now().Add(time.Second)
	for len(logger.GetEntries()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	entries := logger.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if entries[0].Component != debug.ComponentNode {
		t.Fatalf("expected ComponentNode, got %v", entries[0].Component)
	}
}

func TestLogHandleBangAllocatesNothingWhenComponentDisabled(t *testing.T) {
	logger := debug.NewLogger(100)
	defer logger.Shutdown()
	// ComponentNode is left disabled, matching default/realtime-mode use.

	l := NewLog(logger, debug.LevelInfo, "gate")
	pulse := []bang.Bang{bang.NewPulse()}
	var out bang.Bang

	allocs := testing.AllocsPerRun(100, func() {
		l.HandleBang(pulse, &out)
	})
	if allocs != 0 {
		t.Fatalf("HandleBang allocated %f times per call with component disabled, want 0", allocs)
	}
}

func TestLogIgnoresEmptyBang(t *testing.T) {
	logger := debug.NewLogger(100)
	defer logger.Shutdown()
	logger.SetComponentEnabled(debug.ComponentNode, true)

	l := NewLog(logger, debug.LevelInfo, "gate")
	var out bang.Bang
	l.HandleBang([]bang.Bang{bang.NewEmpty()}, &out)

	time.Sleep(50 * time.Millisecond)
	if len(logger.GetEntries()) != 0 {
		t.Fatalf("expected no entries for an Empty bang")
	}
}
