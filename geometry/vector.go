// Package geometry holds the planar primitives the subdivision is built on:
// vector helpers over mgl64.Vec2, bounding boxes and the oriented edge
// geometries carried by darts and simple-graph edges.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon is the tolerance used for point coincidence and for
// classifying boundary cycles when no other value is configured.
const DefaultEpsilon = 1e-6

// Cross returns the z component of the 3D cross product of a and b.
// Positive when b lies counterclockwise of a.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// SignedAngle returns the angle in (-π, π] that rotates a onto b,
// counterclockwise positive. Neither vector needs to be normalized.
func SignedAngle(a, b mgl64.Vec2) float64 {
	return math.Atan2(Cross(a, b), a.Dot(b))
}

// CounterClockwiseAngle returns the angle in [0, 2π) measured counterclockwise
// from reference to v.
func CounterClockwiseAngle(reference, v mgl64.Vec2) float64 {
	angle := SignedAngle(reference, v)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// ClockwiseAngle returns the angle in [0, 2π) measured clockwise from
// reference to v.
func ClockwiseAngle(reference, v mgl64.Vec2) float64 {
	angle := -SignedAngle(reference, v)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// ApproxEqual reports whether a and b coincide within an absolute tolerance
// eps on both axes. Unlike mgl64.FloatEqualThreshold the tolerance is absolute.
func ApproxEqual(a, b mgl64.Vec2, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Y()-b.Y()) <= eps
}

// SignedArea computes the shoelace area of the closed polygon through points.
// Counterclockwise polygons have positive area.
func SignedArea(points []mgl64.Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < n; i++ {
		area += Cross(points[i], points[(i+1)%n])
	}
	return 0.5 * area
}

// IsFinite reports whether both coordinates are neither NaN nor infinite
func IsFinite(p mgl64.Vec2) bool {
	return !math.IsNaN(p.X()) && !math.IsInf(p.X(), 0) &&
		!math.IsNaN(p.Y()) && !math.IsInf(p.Y(), 0)
}

// rotate90 rotates v a quarter turn counterclockwise
func rotate90(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}
