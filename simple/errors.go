package simple

import "github.com/pkg/errors"

var (
	// ErrNilVertex is returned by AddEdge when an endpoint is nil
	ErrNilVertex = errors.New("vertex must not be nil")

	// ErrForeignVertex is returned when a vertex or edge does not belong to
	// the graph it is passed to.
	ErrForeignVertex = errors.New("element is not part of this graph")

	// ErrSelfLoop is returned by AddEdge when both endpoints are the same vertex
	ErrSelfLoop = errors.New("self loops are not supported")

	// ErrMissingGeometry is returned by AddEdge for an edge without geometry
	ErrMissingGeometry = errors.New("edge geometry must not be nil")

	// ErrUnsupportedGeometry is returned by FromGeometries for geometry
	// types that have no planar-graph representation.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
)
