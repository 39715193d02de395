package simple

import (
	"math"
	"sort"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// reference is the direction cyclic orders start from
var reference = mgl64.Vec2{1, 0}

// OutgoingDirection returns the tangent of e leaving v
func (e *Edge) OutgoingDirection(v *Vertex) mgl64.Vec2 {
	if e.start == v {
		return e.geometry.StartDirection()
	}
	return geometry.Reversed(e.geometry).StartDirection()
}

// SortedEdges returns the incident edges of v in cyclic order around v,
// starting from the positive x axis and turning counterclockwise or
// clockwise. Edges are compared by their outgoing tangent, so curved edges
// between the same pair of vertices are ordered correctly. The order of
// edges leaving in the same direction is unspecified; AngularTies reports
// such cases.
func (v *Vertex) SortedEdges(counterclockwise bool) []*Edge {
	angles := v.edgeAngles(counterclockwise)

	order := make([]int, len(v.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return angles[order[i]] < angles[order[j]]
	})
	sorted := make([]*Edge, len(v.edges))
	for i, k := range order {
		sorted[i] = v.edges[k]
	}

	return sorted
}

// AngularTies reports whether two incident edges leave v in the same
// direction, within eps radians. The cyclic order is ill-defined then.
func (v *Vertex) AngularTies(eps float64) bool {
	angles := v.edgeAngles(true)
	sort.Float64s(angles)
	for i := 1; i < len(angles); i++ {
		if angles[i]-angles[i-1] <= eps {
			return true
		}
	}
	// wrap around the reference direction
	n := len(angles)
	return n > 1 && angles[0]+2*math.Pi-angles[n-1] <= eps
}

func (v *Vertex) edgeAngles(counterclockwise bool) []float64 {
	angles := make([]float64, len(v.edges))
	for i, e := range v.edges {
		dir := e.OutgoingDirection(v)
		if counterclockwise {
			angles[i] = geometry.CounterClockwiseAngle(reference, dir)
		} else {
			angles[i] = geometry.ClockwiseAngle(reference, dir)
		}
	}
	return angles
}
