package audiograph

import "errors"

// ErrCapacityExceeded is returned when AddNode is called beyond the
// capacity passed to WithCapacity. Audio-thread code must never hit this:
// capacity is a controller-thread, before-streaming concern.
var ErrCapacityExceeded = errors.New("audiograph: capacity exceeded")

// ErrInvalidParameter is returned by node constructors when a precondition
// on a construction-time parameter is violated (e.g. HardClipper limit
// outside [0,1], CombFilter feedback with |feedback| >= 1).
var ErrInvalidParameter = errors.New("audiograph: invalid parameter")

// ErrInvalidNodeIndex is this package's counterpart of
// graph.ErrInvalidNodeIndex: AddEdge and AddEdges translate the graph
// error into this value, so callers of AudioGraph never need to import
// internal/graph directly.
var ErrInvalidNodeIndex = errors.New("audiograph: invalid node index")

// ErrCycleDetected is returned by topology mutations that would break
// acyclicity. The graph's previous valid sort order is left untouched.
var ErrCycleDetected = errors.New("audiograph: cycle detected")
