// Package simple provides the vertex/edge-list graph a subdivision is built
// from. Vertices carry positions, edges carry an oriented geometry from their
// start vertex to their end vertex, and each vertex can report its incident
// edges in cyclic angular order.
package simple

import (
	"slices"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Vertex is a positioned node of a simple graph
type Vertex struct {
	Position mgl64.Vec2

	edges []*Edge
	index int
}

// Index returns the position of the vertex in its graph, -1 once removed
func (v *Vertex) Index() int { return v.index }

// Edges returns the incident edges in insertion order
func (v *Vertex) Edges() []*Edge { return v.edges }

// Degree returns the number of incident edges
func (v *Vertex) Degree() int { return len(v.edges) }

// EdgeTo returns the edge connecting v and other, or nil
func (v *Vertex) EdgeTo(other *Vertex) *Edge {
	for _, e := range v.edges {
		if e.Other(v) == other {
			return e
		}
	}
	return nil
}

// Edge connects two vertices with an oriented geometry running from Start to End
type Edge struct {
	start, end *Vertex
	geometry   geometry.Oriented
	index      int
}

func (e *Edge) Start() *Vertex { return e.start }
func (e *Edge) End() *Vertex   { return e.end }

// Geometry returns the curve from Start to End
func (e *Edge) Geometry() geometry.Oriented { return e.geometry }

// Index returns the position of the edge in its graph, -1 once removed
func (e *Edge) Index() int { return e.index }

// Other returns the endpoint opposite to v
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.start == v {
		return e.end
	}
	return e.start
}

// Graph is a planar graph given as vertex and edge lists. Both lists are
// compacted by swap-with-last on removal, so indices are dense but not stable.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
}

// New creates an empty graph
func New() *Graph {
	return &Graph{}
}

func (g *Graph) Vertices() []*Vertex { return g.vertices }
func (g *Graph) Edges() []*Edge      { return g.edges }

// AddVertex adds an isolated vertex at position
func (g *Graph) AddVertex(position mgl64.Vec2) *Vertex {
	v := &Vertex{Position: position, index: len(g.vertices)}
	g.vertices = append(g.vertices, v)
	return v
}

// FindVertex returns the first vertex within precision of position, or nil
func (g *Graph) FindVertex(position mgl64.Vec2, precision float64) *Vertex {
	for _, v := range g.vertices {
		if geometry.ApproxEqual(v.Position, position, precision) {
			return v
		}
	}
	return nil
}

// AddEdge connects from and to with geometry. The geometry's endpoints are
// snapped onto the vertex positions. If the two vertices are already
// connected the existing edge is returned and geometry is discarded.
func (g *Graph) AddEdge(from, to *Vertex, geom geometry.Oriented) (*Edge, error) {
	if from == nil || to == nil {
		return nil, ErrNilVertex
	}
	if !g.owns(from) || !g.owns(to) {
		return nil, ErrForeignVertex
	}
	if from == to {
		return nil, errors.Wrapf(ErrSelfLoop, "vertex %d", from.index)
	}
	if geom == nil {
		return nil, ErrMissingGeometry
	}

	if existing := from.EdgeTo(to); existing != nil {
		return existing, nil
	}

	geom.UpdateEndpoints(from.Position, to.Position)
	e := &Edge{start: from, end: to, geometry: geom, index: len(g.edges)}
	from.edges = append(from.edges, e)
	to.edges = append(to.edges, e)
	g.edges = append(g.edges, e)

	return e, nil
}

// RemoveEdge detaches e from its endpoints and from the graph
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil || e.index < 0 || e.index >= len(g.edges) || g.edges[e.index] != e {
		return ErrForeignVertex
	}

	e.start.edges = slices.DeleteFunc(e.start.edges, func(o *Edge) bool { return o == e })
	e.end.edges = slices.DeleteFunc(e.end.edges, func(o *Edge) bool { return o == e })

	last := g.edges[len(g.edges)-1]
	g.edges[e.index] = last
	last.index = e.index
	g.edges = g.edges[:len(g.edges)-1]
	e.index = -1

	return nil
}

// RemoveVertex removes v together with its incident edges
func (g *Graph) RemoveVertex(v *Vertex) error {
	if !g.owns(v) {
		return ErrForeignVertex
	}

	for len(v.edges) > 0 {
		if err := g.RemoveEdge(v.edges[len(v.edges)-1]); err != nil {
			return err
		}
	}

	last := g.vertices[len(g.vertices)-1]
	g.vertices[v.index] = last
	last.index = v.index
	g.vertices = g.vertices[:len(g.vertices)-1]
	v.index = -1

	return nil
}

func (g *Graph) owns(v *Vertex) bool {
	return v != nil && v.index >= 0 && v.index < len(g.vertices) && g.vertices[v.index] == v
}
