package dcel

import (
	"math"

	"github.com/akmonengine/planar/simple"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// Polygon exports a bounded proper face as a polygon: the boundary cycle is
// the shell and the outline of every floating component with a non-zero
// area is a hole. Curved edges are represented by their endpoints only.
func (f *Face[V, D, F]) Polygon() (*geom.Polygon, error) {
	if f.IsOuterFace() {
		return nil, errors.Wrap(ErrOuterFace, "polygon")
	}
	if f.floating {
		return nil, errors.Wrapf(ErrFloatingFace, "polygon of face %d", f.index)
	}

	rings := [][]geom.Coord{closedRing(f.OuterRim())}
	for _, hole := range f.floatingComponents {
		if math.Abs(hole.ComputeArea(false)) <= f.graph.eps {
			// trees and chains enclose nothing
			continue
		}
		rings = append(rings, closedRing(hole.OuterRim()))
	}

	polygon, err := geom.NewPolygon(geom.XY).SetCoords(rings)
	if err != nil {
		return nil, errors.Wrapf(err, "polygon of face %d", f.index)
	}
	return polygon, nil
}

func closedRing(rim []mgl64.Vec2) []geom.Coord {
	ring := make([]geom.Coord, 0, len(rim)+1)
	for _, p := range rim {
		ring = append(ring, geom.Coord{p.X(), p.Y()})
	}
	if len(rim) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// ToSimpleGraph converts g back into a simple graph with one vertex per
// vertex of g, in the same order, and one edge per stored dart carrying a
// clone of its geometry.
func ToSimpleGraph[V, D, F any](g *Graph[V, D, F]) (*simple.Graph, error) {
	sg := simple.New()

	vertices := make([]*simple.Vertex, len(g.vertices))
	for i, v := range g.vertices {
		vertices[i] = sg.AddVertex(v.position)
	}

	for _, d := range g.darts {
		_, err := sg.AddEdge(vertices[d.origin.index], vertices[d.twin.origin.index], d.geometry.Clone())
		if err != nil {
			return nil, errors.Wrapf(err, "dart %d", d.index)
		}
	}

	return sg, nil
}
