package dcel

import (
	"fmt"

	"github.com/akmonengine/planar/geometry"
)

// Dart is one oriented side of an edge (a half-edge). Next continues along
// the boundary of Face; Twin runs along the same edge in the opposite
// direction. Only one dart per edge is stored in Graph.Darts, its twin has
// index -1 and is reachable through Twin.
type Dart[V, D, F any] struct {
	// Data is the application payload
	Data D

	geometry geometry.Oriented
	origin   *Vertex[V, D, F]
	twin     *Dart[V, D, F]
	next     *Dart[V, D, F]
	previous *Dart[V, D, F]
	face     *Face[V, D, F]
	index    int
}

func (d *Dart[V, D, F]) Origin() *Vertex[V, D, F] { return d.origin }

// Destination returns the origin of the twin
func (d *Dart[V, D, F]) Destination() *Vertex[V, D, F] { return d.twin.origin }

func (d *Dart[V, D, F]) Twin() *Dart[V, D, F]     { return d.twin }
func (d *Dart[V, D, F]) Next() *Dart[V, D, F]     { return d.next }
func (d *Dart[V, D, F]) Previous() *Dart[V, D, F] { return d.previous }
func (d *Dart[V, D, F]) Face() *Face[V, D, F]     { return d.face }

// Geometry returns the curve from Origin to Destination. It is owned by the
// dart and must not be modified by callers.
func (d *Dart[V, D, F]) Geometry() geometry.Oriented { return d.geometry }

// Index returns the position of the dart in Graph.Darts, -1 for an unstored
// twin or a removed dart.
func (d *Dart[V, D, F]) Index() int { return d.index }

// stored returns the dart of the twin pair that lives in Graph.Darts
func (d *Dart[V, D, F]) stored() *Dart[V, D, F] {
	if d.index < 0 {
		return d.twin
	}
	return d
}

// String shows the origin and destination of the dart
func (d *Dart[V, D, F]) String() string {
	if d == nil {
		return "nil"
	}
	return fmt.Sprintf("%v -> %v", d.origin.position, d.twin.origin.position)
}
