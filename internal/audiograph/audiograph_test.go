package audiograph

import (
	"errors"
	"testing"

	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/graph"
)

// constNode emits a fixed sample value on every channel, every sample, and
// ignores all inputs. Used to probe scheduler wiring in isolation from the
// real built-in nodes (those live in a separate package that imports this
// one, so defining them here would create an import cycle).
type constNode struct{ value float32 }

func (c *constNode) Process(_ []buffer.Frame, out *buffer.Frame) {
	for ch := range out {
		for n := range out[ch] {
			out[ch][n] = c.value
		}
	}
}
func (c *constNode) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }

// sumNode sums every incoming frame elementwise into its output.
type sumNode struct{}

func (s *sumNode) Process(inputs []buffer.Frame, out *buffer.Frame) {
	var acc buffer.Frame
	for _, in := range inputs {
		for ch := range in {
			for n := range in[ch] {
				acc[ch][n] += in[ch][n]
			}
		}
	}
	*out = acc
}
func (s *sumNode) HandleBang(_ []bang.Bang, out *bang.Bang) { *out = bang.Bang{} }

// echoBangNode re-emits whatever Bang arrived at its first input.
type echoBangNode struct{}

func (e *echoBangNode) Process(_ []buffer.Frame, out *buffer.Frame) { *out = buffer.Frame{} }
func (e *echoBangNode) HandleBang(inputs []bang.Bang, out *bang.Bang) {
	if len(inputs) > 0 {
		*out = inputs[0]
	} else {
		*out = bang.Bang{}
	}
}

func TestRenderBlockSingleSinkNoEdges(t *testing.T) {
	ag := New(4)
	id, err := ag.AddNode(&constNode{value: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	ag.SetSinkIndex(id)

	out := ag.RenderBlock()
	for ch := range out {
		for n := range out[ch] {
			if out[ch][n] != 0.5 {
				t.Fatalf("sample [%d][%d] = %f, want 0.5", ch, n, out[ch][n])
			}
		}
	}
}

func TestRenderBlockRespectsTopologicalOrder(t *testing.T) {
	ag := New(4)
	a, _ := ag.AddNode(&constNode{value: 1})
	b, _ := ag.AddNode(&constNode{value: 2})
	sink, _ := ag.AddNode(&sumNode{})
	if err := ag.AddEdge(a, sink); err != nil {
		t.Fatal(err)
	}
	if err := ag.AddEdge(b, sink); err != nil {
		t.Fatal(err)
	}
	ag.SetSinkIndex(sink)

	out := ag.RenderBlock()
	if out[0][0] != 3 {
		t.Fatalf("expected sum 1+2=3, got %f", out[0][0])
	}
}

func TestAddEdgeRejectsCycleAndPreservesSortOrder(t *testing.T) {
	ag := New(4)
	a, _ := ag.AddNode(&constNode{value: 0})
	b, _ := ag.AddNode(&constNode{value: 0})
	c, _ := ag.AddNode(&constNode{value: 0})
	_ = ag.AddEdge(a, b)
	_ = ag.AddEdge(b, c)

	before := append([]int(nil))
	for _, id := range ag.sortOrder {
		before = append(before, int(id))
	}

	err := ag.AddEdge(c, a)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	after := append([]int(nil))
	for _, id := range ag.sortOrder {
		after = append(after, int(id))
	}
	if len(before) != len(after) {
		t.Fatalf("sort order length changed after rejected mutation")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("sort order changed after rejected mutation: %v -> %v", before, after)
		}
	}

	// The rejected edge must not have taken effect either.
	out := ag.RenderBlock()
	_ = out
	if len(ag.g.Outgoing(c)) != 0 {
		t.Fatalf("rejected edge c->a should not appear in topology")
	}
}

func TestCapacityExceeded(t *testing.T) {
	ag := New(1)
	if _, err := ag.AddNode(&constNode{}); err != nil {
		t.Fatal(err)
	}
	if _, err := ag.AddNode(&constNode{}); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

// pulseEveryBlock always emits Pulse from HandleBang regardless of input.
type pulseEveryBlock struct{}

func (p *pulseEveryBlock) Process(_ []buffer.Frame, out *buffer.Frame) { *out = buffer.Frame{} }
func (p *pulseEveryBlock) HandleBang(_ []bang.Bang, out *bang.Bang)    { *out = bang.NewPulse() }

func TestBangPropagatesWithinSameBlockInTopologicalOrder(t *testing.T) {
	ag := New(4)
	src, _ := ag.AddNode(&pulseEveryBlock{})
	dst, _ := ag.AddNode(&echoBangNode{})
	_ = ag.AddEdge(src, dst)
	ag.SetSinkIndex(dst)

	// src precedes dst in the topological order, so dst's gather during
	// this very call observes src's freshly computed Bang output.
	ag.RenderBlock()

	if got := ag.bangOutput[dst]; !got.IsPulse() {
		t.Fatalf("expected dst to observe Pulse from src within the same block, got kind %v", got.Kind())
	}
}

func TestRenderBlockAllocatesNothingAfterSetup(t *testing.T) {
	ag := New(8)
	a, _ := ag.AddNode(&constNode{value: 1})
	b, _ := ag.AddNode(&constNode{value: 1})
	sink, _ := ag.AddNode(&sumNode{})
	_ = ag.AddEdge(a, sink)
	_ = ag.AddEdge(b, sink)
	ag.SetSinkIndex(sink)

	allocs := testing.AllocsPerRun(100, func() {
		ag.RenderBlock()
	})
	if allocs != 0 {
		t.Fatalf("RenderBlock allocated %f times per call, want 0", allocs)
	}
}

func TestAddEdgeInvalidNodeIndexIsAudiographSentinel(t *testing.T) {
	ag := New(4)
	a, _ := ag.AddNode(&constNode{value: 1})

	err := ag.AddEdge(a, graph.NodeID(99))
	if !errors.Is(err, ErrInvalidNodeIndex) {
		t.Fatalf("expected errors.Is(err, ErrInvalidNodeIndex) to hold, got %v", err)
	}
}

func TestAddEdgesInvalidNodeIndexIsAudiographSentinel(t *testing.T) {
	ag := New(4)
	a, _ := ag.AddNode(&constNode{value: 1})

	err := ag.AddEdges([][2]graph.NodeID{{a, graph.NodeID(99)}})
	if !errors.Is(err, ErrInvalidNodeIndex) {
		t.Fatalf("expected errors.Is(err, ErrInvalidNodeIndex) to hold, got %v", err)
	}
}
