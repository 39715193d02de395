package simple

import (
	"slices"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Planarize splits straight edges where they cross so that edges only meet
// at shared vertices. A crossing within eps of an edge endpoint reuses that
// vertex instead of creating a new one. Edges with non-segment geometry and
// collinear overlaps are left untouched. It returns the number of edge
// splits performed.
func (g *Graph) Planarize(eps float64) (int, error) {
	fixes := 0

	// split edges stay at their index and the remainders are appended, so
	// both loops also visit the pieces created along the way
	for i := 0; i < len(g.edges); i++ {
		for j := i + 1; j < len(g.edges); j++ {
			edge, other := g.edges[i], g.edges[j]

			s, ok := edge.geometry.(*geometry.Segment)
			if !ok {
				break
			}
			o, ok := other.geometry.(*geometry.Segment)
			if !ok {
				continue
			}

			point, hit := s.Intersect(o, eps)
			if !hit {
				continue
			}

			vertex, splitEdge := edge.endpointNear(point, eps)
			match, splitOther := other.endpointNear(point, eps)
			if !splitEdge && !splitOther {
				continue
			}
			if vertex == nil {
				vertex = match
			}
			if vertex == nil {
				vertex = g.AddVertex(point)
			}

			if splitEdge {
				split, err := g.splitAt(edge, vertex)
				if err != nil {
					return fixes, err
				}
				if split {
					fixes++
				}
			}
			if splitOther {
				split, err := g.splitAt(other, vertex)
				if err != nil {
					return fixes, err
				}
				if split {
					fixes++
				}
			}
		}
	}

	return fixes, nil
}

// endpointNear returns the endpoint of e within eps of point. The boolean
// reports whether point lies in the interior of e instead.
func (e *Edge) endpointNear(point mgl64.Vec2, eps float64) (*Vertex, bool) {
	switch {
	case geometry.ApproxEqual(e.start.Position, point, eps):
		return e.start, false
	case geometry.ApproxEqual(e.end.Position, point, eps):
		return e.end, false
	}
	return nil, true
}

// splitAt shortens e to end at v and adds the remainder from v to the old
// end. Nothing changes if either half would duplicate an existing edge.
func (g *Graph) splitAt(e *Edge, v *Vertex) (bool, error) {
	end := e.end
	if v == e.start || v == end || v.EdgeTo(e.start) != nil || v.EdgeTo(end) != nil {
		return false, nil
	}

	rest := e.geometry.Clone()
	rest.UpdateStart(v.Position)

	end.edges = slices.DeleteFunc(end.edges, func(o *Edge) bool { return o == e })
	e.end = v
	e.geometry.UpdateEnd(v.Position)
	v.edges = append(v.edges, e)

	if _, err := g.AddEdge(v, end, rest); err != nil {
		return false, err
	}
	return true, nil
}
