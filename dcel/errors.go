package dcel

import "github.com/pkg/errors"

var (
	// ErrNotInGraph is returned when a vertex, dart or face passed to a graph
	// operation is nil or belongs to another graph.
	ErrNotInGraph = errors.New("element is not part of this graph")

	// ErrNotDegreeTwo is returned by MergeDartAtOrigin when the origin of the
	// dart does not have exactly two incident edges.
	ErrNotDegreeTwo = errors.New("origin must have degree 2")

	// ErrNotIsolated is returned by RemoveVertex for a vertex with incident darts
	ErrNotIsolated = errors.New("vertex must have degree 0")

	// ErrOuterFace is returned by operations that need a bounded face
	ErrOuterFace = errors.New("operation is undefined on the outer face")

	// ErrMissingGeometry is returned when an edge or dart has no geometry
	ErrMissingGeometry = errors.New("geometry must not be nil")

	// ErrAmbiguousOrder is returned by Build when two edges leave a vertex in
	// the same direction, so no cyclic order can be derived.
	ErrAmbiguousOrder = errors.New("edges overlap at vertex")

	// ErrCorrupt reports a broken structural invariant: an unbounded face
	// walk, asymmetric links or inconsistent bookkeeping.
	ErrCorrupt = errors.New("corrupt subdivision")

	// ErrFloatingFace is returned by operations that need a proper face
	ErrFloatingFace = errors.New("operation is undefined on a floating face")
)
