package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Oriented is the geometry payload of an edge: a curve running from Start to
// End. Darts and simple-graph edges own one each and keep its endpoints in
// sync with the positions of their vertices.
type Oriented interface {
	Start() mgl64.Vec2
	End() mgl64.Vec2
	// StartDirection is the tangent at Start pointing along the curve.
	// It orders the edges leaving a vertex.
	StartDirection() mgl64.Vec2
	Clone() Oriented
	// Reverse swaps the orientation in place
	Reverse()
	UpdateEndpoints(start, end mgl64.Vec2)
	UpdateStart(start mgl64.Vec2)
	UpdateEnd(end mgl64.Vec2)
}

// Reversed returns a reversed clone of g, leaving g untouched
func Reversed(g Oriented) Oriented {
	r := g.Clone()
	r.Reverse()
	return r
}

// Segment is a straight line segment from A to B
type Segment struct {
	A, B mgl64.Vec2
}

// NewSegment creates a segment from a to b
func NewSegment(a, b mgl64.Vec2) *Segment {
	return &Segment{A: a, B: b}
}

func (s *Segment) Start() mgl64.Vec2 { return s.A }
func (s *Segment) End() mgl64.Vec2   { return s.B }

func (s *Segment) StartDirection() mgl64.Vec2 {
	return s.B.Sub(s.A)
}

func (s *Segment) Clone() Oriented {
	return &Segment{A: s.A, B: s.B}
}

func (s *Segment) Reverse() {
	s.A, s.B = s.B, s.A
}

func (s *Segment) UpdateEndpoints(start, end mgl64.Vec2) {
	s.A = start
	s.B = end
}

func (s *Segment) UpdateStart(start mgl64.Vec2) { s.A = start }
func (s *Segment) UpdateEnd(end mgl64.Vec2)     { s.B = end }

// Length returns the euclidean length of the segment
func (s *Segment) Length() float64 {
	return s.B.Sub(s.A).Len()
}

// Arc is a circular arc around Center from A to B, counterclockwise when CCW
// is set. Moving an endpoint keeps the center; callers that need a true
// circle must recompute it.
type Arc struct {
	A, B   mgl64.Vec2
	Center mgl64.Vec2
	CCW    bool
}

// NewArc creates an arc from a to b around center
func NewArc(center, a, b mgl64.Vec2, ccw bool) *Arc {
	return &Arc{A: a, B: b, Center: center, CCW: ccw}
}

func (c *Arc) Start() mgl64.Vec2 { return c.A }
func (c *Arc) End() mgl64.Vec2   { return c.B }

func (c *Arc) StartDirection() mgl64.Vec2 {
	radius := c.A.Sub(c.Center)
	if radius.Len() == 0 {
		// degenerate arc, fall back to the chord
		return c.B.Sub(c.A)
	}
	tangent := rotate90(radius)
	if !c.CCW {
		tangent = tangent.Mul(-1)
	}
	return tangent
}

func (c *Arc) Clone() Oriented {
	clone := *c
	return &clone
}

func (c *Arc) Reverse() {
	c.A, c.B = c.B, c.A
	c.CCW = !c.CCW
}

func (c *Arc) UpdateEndpoints(start, end mgl64.Vec2) {
	c.A = start
	c.B = end
}

func (c *Arc) UpdateStart(start mgl64.Vec2) { c.A = start }
func (c *Arc) UpdateEnd(end mgl64.Vec2)     { c.B = end }

// Radius returns the distance from the center to the start point
func (c *Arc) Radius() float64 {
	return c.A.Sub(c.Center).Len()
}

// CentralAngle returns the signed angle swept by the arc, positive when
// counterclockwise. A closed arc (A == B) sweeps a full turn.
func (c *Arc) CentralAngle() float64 {
	ccw := CounterClockwiseAngle(c.A.Sub(c.Center), c.B.Sub(c.Center))
	if c.CCW {
		if ccw == 0 {
			return 2 * math.Pi
		}
		return ccw
	}
	return -(2*math.Pi - ccw)
}

// Intersect returns the point where s and other cross, tolerating eps
// beyond either end. Parallel and collinear segments report no crossing.
func (s *Segment) Intersect(other *Segment, eps float64) (mgl64.Vec2, bool) {
	r := s.B.Sub(s.A)
	q := other.B.Sub(other.A)
	denom := Cross(r, q)
	if math.Abs(denom) <= eps*eps {
		return mgl64.Vec2{}, false
	}

	d := other.A.Sub(s.A)
	t := Cross(d, q) / denom
	u := Cross(d, r) / denom

	tolS := eps / r.Len()
	tolO := eps / q.Len()
	if t < -tolS || t > 1+tolS || u < -tolO || u > 1+tolO {
		return mgl64.Vec2{}, false
	}

	t = math.Min(math.Max(t, 0), 1)
	return s.A.Add(r.Mul(t)), true
}
