package dcel

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a point of the subdivision. It references one arbitrary outgoing
// dart, or none when it is isolated, in which case FloatingInFace is the
// proper face it lies in.
type Vertex[V, D, F any] struct {
	// Data is the application payload
	Data V

	position   mgl64.Vec2
	dart       *Dart[V, D, F]
	floatingIn *Face[V, D, F]
	index      int
}

func (v *Vertex[V, D, F]) Position() mgl64.Vec2 { return v.position }

// Dart returns an outgoing dart, nil for an isolated vertex
func (v *Vertex[V, D, F]) Dart() *Dart[V, D, F] { return v.dart }

// FloatingInFace returns the proper face an isolated vertex lies in
func (v *Vertex[V, D, F]) FloatingInFace() *Face[V, D, F] { return v.floatingIn }

// Index returns the position of the vertex in Graph.Vertices, -1 once removed
func (v *Vertex[V, D, F]) Index() int { return v.index }

// Darts iterates the outgoing darts in the cyclic order of the subdivision
// in O(d) time.
func (v *Vertex[V, D, F]) Darts() iter.Seq[*Dart[V, D, F]] {
	return func(yield func(*Dart[V, D, F]) bool) {
		if v.dart == nil {
			return
		}
		walk := v.dart
		for {
			next := walk.twin.next
			if !yield(walk) {
				return
			}
			walk = next
			if walk == v.dart {
				return
			}
		}
	}
}

// Neighbors iterates the destinations of the outgoing darts
func (v *Vertex[V, D, F]) Neighbors() iter.Seq[*Vertex[V, D, F]] {
	return func(yield func(*Vertex[V, D, F]) bool) {
		for d := range v.Darts() {
			if !yield(d.Destination()) {
				return
			}
		}
	}
}

// Faces iterates the faces of the outgoing darts. A face is repeated when
// several outgoing darts bound it.
func (v *Vertex[V, D, F]) Faces() iter.Seq[*Face[V, D, F]] {
	return func(yield func(*Face[V, D, F]) bool) {
		for d := range v.Darts() {
			if !yield(d.face) {
				return
			}
		}
	}
}

// Degree returns the number of incident edges in O(d) time
func (v *Vertex[V, D, F]) Degree() int {
	deg := 0
	for range v.Darts() {
		deg++
	}
	return deg
}

// IsDegree reports whether the degree is exactly k in O(min(d, k)) time
func (v *Vertex[V, D, F]) IsDegree(k int) bool {
	return v.countUpTo(k+1) == k
}

// IsAtMostDegree reports whether the degree is at most k
func (v *Vertex[V, D, F]) IsAtMostDegree(k int) bool {
	return v.countUpTo(k+1) <= k
}

// IsAtLeastDegree reports whether the degree is at least k
func (v *Vertex[V, D, F]) IsAtLeastDegree(k int) bool {
	return v.countUpTo(k) >= k
}

// countUpTo counts outgoing darts, stopping once limit is reached
func (v *Vertex[V, D, F]) countUpTo(limit int) int {
	deg := 0
	for range v.Darts() {
		if deg >= limit {
			break
		}
		deg++
	}
	return deg
}

// updateIncidentGeometry moves the start of every outgoing geometry and the
// end of every incoming geometry onto the vertex position.
func (v *Vertex[V, D, F]) updateIncidentGeometry() {
	for d := range v.Darts() {
		d.geometry.UpdateStart(v.position)
		d.twin.geometry.UpdateEnd(v.position)
	}
}
