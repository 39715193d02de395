package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box in the plane
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// EmptyAABB returns a box that contains nothing; extending it by a point
// yields the degenerate box of that point.
func EmptyAABB() AABB {
	return AABB{
		Min: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// BoundsOf returns the smallest box enclosing all points
func BoundsOf(points ...mgl64.Vec2) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

// IsEmpty reports whether the box has never been extended
func (a AABB) IsEmpty() bool {
	return a.Min.X() > a.Max.X() || a.Min.Y() > a.Max.Y()
}

// Extend returns the box grown to include point
func (a AABB) Extend(point mgl64.Vec2) AABB {
	return AABB{
		Min: mgl64.Vec2{math.Min(a.Min.X(), point.X()), math.Min(a.Min.Y(), point.Y())},
		Max: mgl64.Vec2{math.Max(a.Max.X(), point.X()), math.Max(a.Max.Y(), point.Y())},
	}
}

// Union returns the smallest box containing both boxes
func (a AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return a
	}
	return a.Extend(other.Min).Extend(other.Max)
}

// Expand returns the box grown by margin on every side
func (a AABB) Expand(margin float64) AABB {
	if a.IsEmpty() {
		return a
	}
	m := mgl64.Vec2{margin, margin}
	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

// Size returns the extent of the box along both axes
func (a AABB) Size() mgl64.Vec2 {
	if a.IsEmpty() {
		return mgl64.Vec2{}
	}
	return a.Max.Sub(a.Min)
}

// ContainsPoint checks if a point is inside the AABB, boundary included
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on both axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}
