package dcel

import (
	"iter"
	"math"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Face is a region of the subdivision bounded by one dart cycle.
//
// A proper face is the interior of a counterclockwise cycle and may hold
// nested structure: floating components (the outlines of connected
// components drawn inside it) and isolated vertices. A floating face is the
// clockwise outline of such a component, seen from the proper face around
// it; its contained proper faces are the top-level faces of that component.
// The outer face is proper, has no boundary dart and is always Faces()[0].
type Face[V, D, F any] struct {
	// Data is the application payload
	Data F

	graph    *Graph[V, D, F]
	dart     *Dart[V, D, F]
	floating bool

	// floating faces only
	containing      *Face[V, D, F]
	containedProper []*Face[V, D, F]

	// proper faces only
	floatingComponents []*Face[V, D, F]
	floatingVertices   []*Vertex[V, D, F]

	depth int
	index int
}

// Dart returns a dart of the boundary cycle, nil for the outer face
func (f *Face[V, D, F]) Dart() *Dart[V, D, F] { return f.dart }

func (f *Face[V, D, F]) IsOuterFace() bool    { return f.dart == nil }
func (f *Face[V, D, F]) IsProperFace() bool   { return !f.floating }
func (f *Face[V, D, F]) IsFloatingFace() bool { return f.floating }

// ProperFace returns f itself when proper, otherwise the proper face it
// floats in.
func (f *Face[V, D, F]) ProperFace() *Face[V, D, F] {
	if f.floating {
		return f.containing
	}
	return f
}

// ContainingProperFace returns the proper face a floating face lies in, nil
// for proper faces.
func (f *Face[V, D, F]) ContainingProperFace() *Face[V, D, F] { return f.containing }

// ContainedProperFaces returns the proper faces directly inside the outline
// of a floating face.
func (f *Face[V, D, F]) ContainedProperFaces() []*Face[V, D, F] { return f.containedProper }

// FloatingComponents returns the floating faces nested directly in a proper face
func (f *Face[V, D, F]) FloatingComponents() []*Face[V, D, F] { return f.floatingComponents }

// FloatingVertices returns the isolated vertices lying directly in a proper face
func (f *Face[V, D, F]) FloatingVertices() []*Vertex[V, D, F] { return f.floatingVertices }

// NestingDepth counts the floating faces enclosing f, f itself excluded. The
// outer face and the faces floating in it have depth 0.
func (f *Face[V, D, F]) NestingDepth() int { return f.depth }

// Index returns the position of the face in Graph.Faces
func (f *Face[V, D, F]) Index() int { return f.index }

// Darts iterates the boundary cycle starting at Dart
func (f *Face[V, D, F]) Darts() iter.Seq[*Dart[V, D, F]] {
	return func(yield func(*Dart[V, D, F]) bool) {
		if f.dart == nil {
			return
		}
		walk := f.dart
		for {
			if !yield(walk) {
				return
			}
			walk = walk.next
			if walk == f.dart {
				return
			}
		}
	}
}

// Vertices iterates the origins along the boundary cycle
func (f *Face[V, D, F]) Vertices() iter.Seq[*Vertex[V, D, F]] {
	return func(yield func(*Vertex[V, D, F]) bool) {
		for d := range f.Darts() {
			if !yield(d.origin) {
				return
			}
		}
	}
}

// OuterRim materializes the boundary cycle as the closed polygon through the
// dart origins. It is nil for the outer face.
func (f *Face[V, D, F]) OuterRim() []mgl64.Vec2 {
	var rim []mgl64.Vec2
	for v := range f.Vertices() {
		rim = append(rim, v.position)
	}
	return rim
}

// Bounds returns the bounding box of the boundary cycle. The outer face is
// unbounded.
func (f *Face[V, D, F]) Bounds() geometry.AABB {
	if f.dart == nil {
		return geometry.AABB{
			Min: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
			Max: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		}
	}
	return geometry.BoundsOf(f.OuterRim()...)
}

// ComputeArea returns the signed area of the boundary cycle: positive for
// proper faces, non-positive for floating faces and +Inf for the outer face.
// With subtractHoles a proper face discounts the area inside the outlines of
// its floating components. Floating faces ignore the flag.
func (f *Face[V, D, F]) ComputeArea(subtractHoles bool) float64 {
	if f.dart == nil {
		return math.Inf(1)
	}

	area := signedAreaOfCycle(f.dart)
	if subtractHoles && !f.floating {
		for _, hole := range f.floatingComponents {
			// non-positive
			area += signedAreaOfCycle(hole.dart)
		}
	}
	return area
}

// EnclosesPoint reports whether point lies inside the boundary cycle,
// ignoring anything nested in the face. Points within epsilon of the
// boundary yield includeRim. The outer face encloses everything.
func (f *Face[V, D, F]) EnclosesPoint(point mgl64.Vec2, includeRim bool) bool {
	if f.dart == nil {
		return true
	}
	return walkContains(f.dart, point, includeRim, f.graph.eps)
}

// ContainsPoint reports whether point lies in the face proper: enclosed by
// its boundary and not inside any nested hole. For a proper face the holes
// are the faces contained in its floating components, for a floating face its
// contained proper faces.
func (f *Face[V, D, F]) ContainsPoint(point mgl64.Vec2, includeRim bool) bool {
	if !f.EnclosesPoint(point, includeRim) {
		return false
	}

	eps := f.graph.eps
	if f.floating {
		for _, hole := range f.containedProper {
			if walkContains(hole.dart, point, !includeRim, eps) {
				return false
			}
		}
		return true
	}

	for _, floater := range f.floatingComponents {
		for _, hole := range floater.containedProper {
			if walkContains(hole.dart, point, !includeRim, eps) {
				return false
			}
		}
	}
	return true
}

// RecomputeContainedProperFaces collects the faces reachable from the
// outline of a floating face through next, previous and twin links, which
// are exactly the proper faces of its connected component. Proper faces are
// left untouched.
func (f *Face[V, D, F]) RecomputeContainedProperFaces() {
	if !f.floating {
		return
	}

	f.containedProper = f.containedProper[:0]

	visitedDarts := map[*Dart[V, D, F]]struct{}{f.dart: {}}
	visitedFaces := map[*Face[V, D, F]]struct{}{f: {}}
	queue := []*Dart[V, D, F]{f.dart}

	for head := 0; head < len(queue); head++ {
		explore := queue[head]

		// degenerate components may show several floating cycles
		if _, seen := visitedFaces[explore.face]; !seen && !explore.face.floating {
			visitedFaces[explore.face] = struct{}{}
			f.containedProper = append(f.containedProper, explore.face)
		}

		for _, d := range [3]*Dart[V, D, F]{explore.previous, explore.next, explore.twin} {
			if _, seen := visitedDarts[d]; !seen {
				visitedDarts[d] = struct{}{}
				queue = append(queue, d)
			}
		}
	}
}

// signedAreaOfCycle is the shoelace area of the cycle through dart
func signedAreaOfCycle[V, D, F any](dart *Dart[V, D, F]) float64 {
	area := 0.0
	walk := dart
	for {
		area += geometry.Cross(walk.origin.position, walk.twin.origin.position)
		walk = walk.next
		if walk == dart {
			break
		}
	}
	return 0.5 * area
}

// walkContains runs a winding test of point against the cycle through dart.
// The signed angles subtended by consecutive boundary vertices add up to a
// multiple of 2π: zero outside, non-zero inside. Points on a vertex or on a
// chord between consecutive vertices return includeRim before any angle is
// taken, which also avoids normalizing zero vectors.
func walkContains[V, D, F any](dart *Dart[V, D, F], point mgl64.Vec2, includeRim bool, eps float64) bool {
	walk := dart
	if geometry.ApproxEqual(walk.origin.position, point, eps) {
		return includeRim
	}

	toOrigin := walk.origin.position.Sub(point)
	totalAngle := 0.0
	for {
		from := walk.origin.position
		walk = walk.next
		to := walk.origin.position

		if geometry.ApproxEqual(to, point, eps) || onChord(from, to, point, eps) {
			return includeRim
		}

		toDestination := to.Sub(point)
		totalAngle += geometry.SignedAngle(toOrigin, toDestination)
		toOrigin = toDestination

		if walk == dart {
			break
		}
	}

	return !(-0.5 < totalAngle && totalAngle < 0.5)
}

// onChord reports whether p lies within eps of the segment ab
func onChord(a, b, p mgl64.Vec2, eps float64) bool {
	ab := b.Sub(a)
	length := ab.Len()
	if length <= eps {
		return false
	}
	ap := p.Sub(a)
	if math.Abs(geometry.Cross(ab, ap))/length > eps {
		return false
	}
	t := ap.Dot(ab) / (length * length)
	return t >= 0 && t <= 1
}
