// Package audiograph implements the per-block scheduler: the Node
// contract, and AudioGraph, which drives nodes in topological order once
// per render_block call using preallocated per-node scratch storage in
// both the audio and Bang domains. This is the hot path invoked from the
// realtime audio callback; after WithCapacity returns, RenderBlock performs
// no heap allocation.
package audiograph

import (
	"errors"

	"audiograph/internal/bang"
	"audiograph/internal/buffer"
	"audiograph/internal/debug"
	"audiograph/internal/graph"
)

// MaxBangInputs bounds the Bang scratch gather buffer: the k-th incoming
// neighbor beyond this fan-in is simply not gathered.
const MaxBangInputs = 8

// AudioGraph owns the topology, the persistent per-node audio and Bang
// outputs, and the scratch buffers reused every block.
type AudioGraph struct {
	g     *graph.Graph
	nodes []Node

	audioOutput []buffer.Frame
	bangOutput  []bang.Bang

	audioScratch []buffer.Frame
	bangScratch  [MaxBangInputs]bang.Bang

	sortOrder []graph.NodeID
	sinkIndex graph.NodeID

	capacity int
	logger   *debug.Logger
}

// New preallocates all node, scratch, output, and sort-order storage for
// capacity nodes, using the default maximum fan-in of MaxBangInputs. This
// is the constructor named directly by the engine's build API.
func New(capacity int) *AudioGraph {
	return WithCapacity(capacity, MaxBangInputs)
}

// WithCapacity preallocates all node, scratch, output, and sort-order
// storage for capacity nodes and a fan-in of maxFanIn edges. Use this over
// New when a node legitimately needs more than MaxBangInputs audio inputs
// (the Bang domain is always capped at MaxBangInputs regardless).
func WithCapacity(capacity, maxFanIn int) *AudioGraph {
	if maxFanIn < MaxBangInputs {
		maxFanIn = MaxBangInputs
	}
	return &AudioGraph{
		g:            graph.WithCapacity(capacity),
		nodes:        make([]Node, 0, capacity),
		audioOutput:  make([]buffer.Frame, 0, capacity),
		bangOutput:   make([]bang.Bang, 0, capacity),
		audioScratch: make([]buffer.Frame, 0, maxFanIn),
		sortOrder:    make([]graph.NodeID, 0, capacity),
		capacity:     capacity,
	}
}

// SetLogger attaches a logger for controller-thread diagnostics (topology
// mutation, rejected cycles). Never call this once streaming has started.
func (ag *AudioGraph) SetLogger(l *debug.Logger) { ag.logger = l }

// AddNode moves ownership of n into the graph, recomputes the sort order so
// the new node is rendered, and returns its id. Returns
// ErrCapacityExceeded if capacity (given to WithCapacity) would be
// exceeded; callers may only grow capacity from the controller thread,
// before streaming, never from the audio thread.
func (ag *AudioGraph) AddNode(n Node) (graph.NodeID, error) {
	if len(ag.nodes) >= ag.capacity {
		return 0, ErrCapacityExceeded
	}
	id := ag.g.AddNode()
	ag.nodes = append(ag.nodes, n)
	ag.audioOutput = append(ag.audioOutput, buffer.Frame{})
	ag.bangOutput = append(ag.bangOutput, bang.Bang{})
	// A node with no edges cannot close a cycle, so this resort cannot fail.
	_ = ag.resort()
	return id, nil
}

// AddEdge adds a topology edge and recomputes the sort order. If the new
// edge would introduce a cycle, the mutation is rejected (the edge is
// removed again) and the previous valid sort order is preserved.
func (ag *AudioGraph) AddEdge(from, to graph.NodeID) error {
	if err := ag.g.AddEdge(from, to); err != nil {
		return translateGraphErr(err)
	}
	if err := ag.resort(); err != nil {
		ag.removeEdge(from, to)
		return err
	}
	return nil
}

// AddEdges adds every (from, to) pair, resorting once at the end. If the
// resulting topology contains a cycle, none of the edges are applied and
// the previous valid sort order is preserved.
func (ag *AudioGraph) AddEdges(edges [][2]graph.NodeID) error {
	applied := make([][2]graph.NodeID, 0, len(edges))
	for _, e := range edges {
		// Only edges this call actually adds are recorded for rollback, so a
		// rejected batch never removes an edge that existed before it.
		existed := false
		if e[0] >= 0 && int(e[0]) < ag.g.NodeCount() {
			for _, v := range ag.g.Outgoing(e[0]) {
				if v == e[1] {
					existed = true
					break
				}
			}
		}
		if err := ag.g.AddEdge(e[0], e[1]); err != nil {
			for _, a := range applied {
				ag.removeEdge(a[0], a[1])
			}
			return translateGraphErr(err)
		}
		if !existed {
			applied = append(applied, e)
		}
	}
	if err := ag.resort(); err != nil {
		for _, a := range applied {
			ag.removeEdge(a[0], a[1])
		}
		return err
	}
	return nil
}

// removeEdge undoes a just-added edge by rebuilding the underlying graph.
// Graph itself never exposes edge removal (topologies only grow during
// normal operation); a rejected mutation is the one case that needs it, so
// it is handled here by replaying every edge except the rejected one.
func (ag *AudioGraph) removeEdge(from, to graph.NodeID) {
	rebuilt := graph.WithCapacity(ag.capacity)
	for i := 0; i < ag.g.NodeCount(); i++ {
		rebuilt.AddNode()
	}
	for u := 0; u < ag.g.NodeCount(); u++ {
		for _, v := range ag.g.Outgoing(graph.NodeID(u)) {
			if graph.NodeID(u) == from && v == to {
				continue
			}
			_ = rebuilt.AddEdge(graph.NodeID(u), v)
		}
	}
	ag.g = rebuilt
	// The graph without the rejected edge was valid before this mutation
	// began, so resorting here cannot fail.
	if order, err := ag.g.Sort(); err == nil {
		ag.sortOrder = order
	}
}

// translateGraphErr maps a graph-package sentinel to its audiograph
// equivalent, so callers can errors.Is against the audiograph sentinels
// without importing internal/graph themselves. Errors graph doesn't define
// a translation for pass through unchanged.
func translateGraphErr(err error) error {
	if errors.Is(err, graph.ErrInvalidNodeIndex) {
		return ErrInvalidNodeIndex
	}
	return err
}

func (ag *AudioGraph) resort() error {
	order, err := ag.g.Sort()
	if err != nil {
		if ag.logger != nil {
			ag.logger.Logf(debug.ComponentAudioGraph, debug.LevelWarning, "topology mutation rejected: %v", err)
		}
		return ErrCycleDetected
	}
	ag.sortOrder = order
	return nil
}

// SetSinkIndex designates which node's output is returned by RenderBlock.
func (ag *AudioGraph) SetSinkIndex(id graph.NodeID) { ag.sinkIndex = id }

// RenderBlock is the hot path: for each node in sorted order it gathers
// Bang inputs and runs HandleBang, then gathers audio inputs and runs
// Process, writing into that node's persistent output. It returns a
// pointer to the sink node's audio Frame. No allocation occurs here; the
// scratch slices are reused in place every call.
func (ag *AudioGraph) RenderBlock() *buffer.Frame {
	for _, i := range ag.sortOrder {
		incoming := ag.g.Incoming(i)

		for k := range ag.bangScratch {
			ag.bangScratch[k] = bang.Bang{}
		}
		for k, src := range incoming {
			if k >= MaxBangInputs {
				break
			}
			ag.bangScratch[k] = ag.bangOutput[src]
		}
		ag.nodes[i].HandleBang(ag.bangScratch[:min(len(incoming), MaxBangInputs)], &ag.bangOutput[i])

		ag.audioScratch = ag.audioScratch[:0]
		maxFanIn := cap(ag.audioScratch)
		for k, src := range incoming {
			if k >= maxFanIn {
				break
			}
			ag.audioScratch = append(ag.audioScratch, ag.audioOutput[src])
		}
		ag.nodes[i].Process(ag.audioScratch, &ag.audioOutput[i])
	}

	return &ag.audioOutput[ag.sinkIndex]
}
