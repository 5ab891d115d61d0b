// Package graph implements the topology store shared by every node kind:
// dense node ids, an ordered-set adjacency representation, and a
// deterministic, cycle-detecting topological sort (Kahn's algorithm with
// ascending-id / insertion-order tie-breaking).
package graph

import "errors"

// ErrCycleDetected is returned by Sort when the graph contains a cycle.
var ErrCycleDetected = errors.New("graph: cycle detected")

// ErrInvalidNodeIndex is returned when an edge endpoint is out of range.
var ErrInvalidNodeIndex = errors.New("graph: invalid node index")

// NodeID is a dense nonnegative integer. Once assigned it is stable for the
// lifetime of the graph; ids are never reused.
type NodeID int

// orderedSet is an insertion-ordered set of NodeIDs: a slice for
// deterministic iteration order plus a membership index for O(1)
// duplicate checks. This is the Go stand-in for the ordered-set adjacency
// (IndexSet-equivalent) the reference implementation settled on.
type orderedSet struct {
	order []NodeID
	has   map[NodeID]struct{}
}

func newOrderedSet(capacity int) orderedSet {
	return orderedSet{
		order: make([]NodeID, 0, capacity),
		has:   make(map[NodeID]struct{}, capacity),
	}
}

func (s *orderedSet) add(id NodeID) (added bool) {
	if _, ok := s.has[id]; ok {
		return false
	}
	s.has[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Graph stores nodes, directed edges, and computes topological orders.
// It holds no node payload itself — AudioGraph layers that on top — only
// the shape of the DAG.
type Graph struct {
	nodeCount int
	outgoing  []orderedSet
	incoming  []orderedSet
}

// WithCapacity preallocates the per-node adjacency slices for capacity
// nodes, so AddNode within that capacity never grows them. Each AddNode
// call still allocates the new node's own incoming and outgoing sets.
func WithCapacity(capacity int) *Graph {
	return &Graph{
		outgoing: make([]orderedSet, 0, capacity),
		incoming: make([]orderedSet, 0, capacity),
	}
}

// AddNode appends a new node and returns its freshly assigned id.
func (g *Graph) AddNode() NodeID {
	id := NodeID(g.nodeCount)
	g.nodeCount++
	g.outgoing = append(g.outgoing, newOrderedSet(4))
	g.incoming = append(g.incoming, newOrderedSet(4))
	return id
}

// NodeCount returns the number of nodes added so far.
func (g *Graph) NodeCount() int { return g.nodeCount }

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < g.nodeCount
}

// AddEdge inserts v into outgoing[u] and u into incoming[v]. Self-loops
// (u == v) are rejected silently, as are duplicate edges. Out-of-range ids
// are reported as ErrInvalidNodeIndex rather than indexing out of bounds.
func (g *Graph) AddEdge(u, v NodeID) error {
	if !g.valid(u) || !g.valid(v) {
		return ErrInvalidNodeIndex
	}
	if u == v {
		return nil
	}
	g.outgoing[u].add(v)
	g.incoming[v].add(u)
	return nil
}

// AddEdges adds every (u, v) pair identically to AddEdge.
func (g *Graph) AddEdges(edges [][2]NodeID) error {
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Outgoing returns the ids node id points to, in edge-insertion order.
func (g *Graph) Outgoing(id NodeID) []NodeID { return g.outgoing[id].order }

// Incoming returns the ids that point to node id, in edge-insertion order.
func (g *Graph) Incoming(id NodeID) []NodeID { return g.incoming[id].order }

// Sort computes a topological order via Kahn's algorithm: indegrees are
// the sizes of each node's incoming set (the mirror of Outgoing), roots
// are enqueued in ascending id order, and a
// node's children are relaxed in their outgoing insertion order. This
// makes the result deterministic and reproducible across runs for an
// identical sequence of AddNode/AddEdge calls.
func (g *Graph) Sort() ([]NodeID, error) {
	indegree := make([]int, g.nodeCount)
	for v := 0; v < g.nodeCount; v++ {
		for range g.incoming[v].order {
			indegree[v]++
		}
	}

	queue := make([]NodeID, 0, g.nodeCount)
	for id := 0; id < g.nodeCount; id++ {
		if indegree[id] == 0 {
			queue = append(queue, NodeID(id))
		}
	}

	order := make([]NodeID, 0, g.nodeCount)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, w := range g.outgoing[u].order {
			indegree[w]--
			if indegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if len(order) != g.nodeCount {
		return nil, ErrCycleDetected
	}
	return order, nil
}
