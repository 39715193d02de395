// Package dcel implements a doubly-connected edge list: a planar subdivision
// stored as vertices, darts (half-edges) and faces, with nested components
// resolved into a containment tree rooted at the outer face.
package dcel

import (
	"github.com/akmonengine/planar/geometry"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Graph is a planar subdivision. Faces()[0] is always the outer face.
type Graph[V, D, F any] struct {
	vertices []*Vertex[V, D, F]
	// one dart per edge, the twin is reached through Dart.Twin
	darts []*Dart[V, D, F]
	faces []*Face[V, D, F]

	eps     float64
	workers int
	logger  *log.Logger
}

// NewGraph returns an empty subdivision holding only the outer face
func NewGraph[V, D, F any](opts Options) *Graph[V, D, F] {
	opts = opts.withDefaults()
	g := &Graph[V, D, F]{
		eps:     opts.Epsilon,
		workers: opts.Workers,
		logger:  opts.Logger,
	}
	g.addFace(&Face[V, D, F]{})
	return g
}

func (g *Graph[V, D, F]) Vertices() []*Vertex[V, D, F] { return g.vertices }
func (g *Graph[V, D, F]) Darts() []*Dart[V, D, F]      { return g.darts }
func (g *Graph[V, D, F]) Faces() []*Face[V, D, F]      { return g.faces }

// OuterFace returns the unbounded face
func (g *Graph[V, D, F]) OuterFace() *Face[V, D, F] { return g.faces[0] }

// Epsilon returns the tolerance used by the point and area predicates
func (g *Graph[V, D, F]) Epsilon() float64 { return g.eps }

// AddVertex inserts an isolated vertex and registers it with the proper face
// containing position. Points on a boundary go to the face outside it.
func (g *Graph[V, D, F]) AddVertex(position mgl64.Vec2) *Vertex[V, D, F] {
	v := &Vertex[V, D, F]{position: position}
	g.addVertex(v)

	face := g.ComputeContainingProperFace(position, false)
	v.floatingIn = face
	face.floatingVertices = append(face.floatingVertices, v)

	return v
}

// ComputeContainingProperFace locates the innermost proper face whose
// boundary encloses point by descending the containment tree from the outer
// face. With rimToInnerFace a point on a boundary belongs to the face inside
// that boundary.
func (g *Graph[V, D, F]) ComputeContainingProperFace(point mgl64.Vec2, rimToInnerFace bool) *Face[V, D, F] {
	enclosing := g.faces[0]

descend:
	for {
		for _, floater := range enclosing.floatingComponents {
			for _, face := range floater.containedProper {
				if face.EnclosesPoint(point, rimToInnerFace) {
					enclosing = face
					continue descend
				}
			}
		}
		return enclosing
	}
}

// SplitEdge inserts a vertex at position on the edge of split in O(1) time.
// Afterwards split runs from its origin to the new vertex and a new dart
// runs from the new vertex to the former destination. The four geometries
// are taken over by the darts and snapped to their endpoints.
func (g *Graph[V, D, F]) SplitEdge(
	split *Dart[V, D, F],
	position mgl64.Vec2,
	originToNew, originToNewReversed, newToDestination, newToDestinationReversed geometry.Oriented,
) (*Vertex[V, D, F], error) {
	if !g.ownsDart(split) {
		return nil, errors.Wrap(ErrNotInGraph, "split edge")
	}
	if originToNew == nil || originToNewReversed == nil || newToDestination == nil || newToDestinationReversed == nil {
		return nil, errors.Wrap(ErrMissingGeometry, "split edge")
	}

	from := split.origin
	to := split.twin.origin

	vertex := &Vertex[V, D, F]{position: position}
	g.addVertex(vertex)

	dart := &Dart[V, D, F]{}
	dartRev := &Dart[V, D, F]{index: -1}
	g.addDart(dart)
	dart.twin = dartRev
	dartRev.twin = dart

	split.geometry = originToNew
	split.geometry.UpdateEndpoints(from.position, position)
	split.twin.geometry = originToNewReversed
	split.twin.geometry.UpdateEndpoints(position, from.position)
	dart.geometry = newToDestination
	dart.geometry.UpdateEndpoints(position, to.position)
	dartRev.geometry = newToDestinationReversed
	dartRev.geometry.UpdateEndpoints(to.position, position)

	if split.next == split.twin {
		// destination has degree 1
		dart.next = dartRev
		dartRev.previous = dart
	} else {
		dart.next = split.next
		dart.next.previous = dart
		dartRev.previous = split.twin.previous
		dartRev.previous.next = dartRev
	}
	split.next = dart
	dart.previous = split
	split.twin.previous = dartRev
	dartRev.next = split.twin

	dart.face = split.face
	dartRev.face = split.twin.face

	if to.dart == split.twin {
		to.dart = dartRev
	}
	dart.origin = vertex
	dartRev.origin = to
	split.twin.origin = vertex
	vertex.dart = dart

	return vertex, nil
}

// MergeDartAtOrigin removes the degree-2 origin of out in O(1) time, joining
// its two edges into one. The dart arriving at the origin survives and takes
// over merged, its twin takes over mergedReversed. Nothing changes when the
// origin is not of degree 2.
func (g *Graph[V, D, F]) MergeDartAtOrigin(out *Dart[V, D, F], merged, mergedReversed geometry.Oriented) error {
	if !g.ownsDart(out) {
		return errors.Wrap(ErrNotInGraph, "merge dart")
	}
	if !out.origin.IsDegree(2) {
		return errors.Wrapf(ErrNotDegreeTwo, "vertex %d", out.origin.index)
	}
	if merged == nil || mergedReversed == nil {
		return errors.Wrap(ErrMissingGeometry, "merge dart")
	}

	g.removeVertexFromList(out.origin)
	g.removeDartFromList(out)

	inc := out.previous
	if out.face.dart == out {
		out.face.dart = inc
	}
	if out.twin.face.dart == out.twin {
		out.twin.face.dart = out.twin.next
	}

	inc.next = out.next
	inc.next.previous = inc

	inc.twin.origin = out.twin.origin
	inc.twin.origin.dart = inc.twin
	inc.twin.previous = out.twin.previous
	inc.twin.previous.next = inc.twin

	inc.geometry = merged
	inc.geometry.UpdateEndpoints(inc.origin.position, inc.twin.origin.position)
	inc.twin.geometry = mergedReversed
	inc.twin.geometry.UpdateEndpoints(inc.twin.origin.position, inc.origin.position)

	return nil
}

// RemoveVertex deletes an isolated vertex
func (g *Graph[V, D, F]) RemoveVertex(v *Vertex[V, D, F]) error {
	if !g.ownsVertex(v) {
		return errors.Wrap(ErrNotInGraph, "remove vertex")
	}
	if v.dart != nil {
		return errors.Wrapf(ErrNotIsolated, "vertex %d", v.index)
	}

	v.floatingIn.removeFloatingVertex(v)
	v.floatingIn = nil
	g.removeVertexFromList(v)
	return nil
}

// MoveVertex changes the position of v and snaps the incident geometries to
// it. An isolated vertex is handed over to the proper face containing its new
// position. Moving a vertex of degree > 0 does not check that the
// subdivision stays planar.
func (g *Graph[V, D, F]) MoveVertex(v *Vertex[V, D, F], position mgl64.Vec2) error {
	if !g.ownsVertex(v) {
		return errors.Wrap(ErrNotInGraph, "move vertex")
	}

	v.position = position
	if v.dart != nil {
		v.updateIncidentGeometry()
		return nil
	}

	face := g.ComputeContainingProperFace(position, false)
	if face != v.floatingIn {
		v.floatingIn.removeFloatingVertex(v)
		v.floatingIn = face
		face.floatingVertices = append(face.floatingVertices, v)
	}
	return nil
}

// SortToContainmentOrder reorders Faces so that every face comes after the
// faces enclosing it, and assigns nesting depths on the way. Floating faces
// share the depth of their proper face, proper faces contained in a floating
// face are one level deeper. It runs in O(n) for n faces.
func (g *Graph[V, D, F]) SortToContainmentOrder() error {
	outer := g.faces[0]
	if !outer.IsOuterFace() {
		return errors.Wrap(ErrCorrupt, "face 0 is not the outer face")
	}

	// everything < head is processed, everything in order is discovered
	order := make([]*Face[V, D, F], 0, len(g.faces))
	depth := make(map[*Face[V, D, F]]int, len(g.faces))
	order = append(order, outer)
	depth[outer] = 0

	discover := func(face *Face[V, D, F], d int) error {
		if _, seen := depth[face]; seen {
			return errors.Wrapf(ErrCorrupt, "face %d is nested twice", face.index)
		}
		depth[face] = d
		order = append(order, face)
		return nil
	}

	for head := 0; head < len(order); head++ {
		face := order[head]
		if face.IsProperFace() {
			for _, floater := range face.floatingComponents {
				if err := discover(floater, depth[face]); err != nil {
					return err
				}
			}
		} else {
			for _, contained := range face.containedProper {
				if err := discover(contained, depth[face]+1); err != nil {
					return err
				}
			}
		}
	}

	if len(order) != len(g.faces) {
		return errors.Wrapf(ErrCorrupt, "containment tree reaches %d of %d faces", len(order), len(g.faces))
	}

	for i, face := range order {
		face.index = i
		face.depth = depth[face]
	}
	g.faces = order

	return nil
}

// ownsVertex reports whether v is a live vertex of g
func (g *Graph[V, D, F]) ownsVertex(v *Vertex[V, D, F]) bool {
	return v != nil && v.index >= 0 && v.index < len(g.vertices) && g.vertices[v.index] == v
}

// ownsDart reports whether d or its twin is a live stored dart of g
func (g *Graph[V, D, F]) ownsDart(d *Dart[V, D, F]) bool {
	if d == nil || d.twin == nil {
		return false
	}
	s := d.stored()
	return s.index >= 0 && s.index < len(g.darts) && g.darts[s.index] == s
}

func (g *Graph[V, D, F]) addVertex(v *Vertex[V, D, F]) {
	v.index = len(g.vertices)
	g.vertices = append(g.vertices, v)
}

func (g *Graph[V, D, F]) addDart(d *Dart[V, D, F]) {
	d.index = len(g.darts)
	g.darts = append(g.darts, d)
}

func (g *Graph[V, D, F]) addFace(f *Face[V, D, F]) {
	f.graph = g
	f.index = len(g.faces)
	g.faces = append(g.faces, f)
}

// removeVertexFromList swaps the last vertex into the slot of v
func (g *Graph[V, D, F]) removeVertexFromList(v *Vertex[V, D, F]) {
	last := g.vertices[len(g.vertices)-1]
	g.vertices[len(g.vertices)-1] = nil
	g.vertices = g.vertices[:len(g.vertices)-1]

	if last != v {
		g.vertices[v.index] = last
		last.index = v.index
	}
	v.index = -1
}

// removeDartFromList drops the stored dart of the pair of d
func (g *Graph[V, D, F]) removeDartFromList(d *Dart[V, D, F]) {
	d = d.stored()

	last := g.darts[len(g.darts)-1]
	g.darts[len(g.darts)-1] = nil
	g.darts = g.darts[:len(g.darts)-1]

	if last != d {
		g.darts[d.index] = last
		last.index = d.index
	}
	d.index = -1
}

func (f *Face[V, D, F]) removeFloatingVertex(v *Vertex[V, D, F]) {
	for i, floater := range f.floatingVertices {
		if floater == v {
			f.floatingVertices = append(f.floatingVertices[:i], f.floatingVertices[i+1:]...)
			return
		}
	}
}
