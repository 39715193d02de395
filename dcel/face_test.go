package dcel

import (
	"math"
	"testing"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
)

func TestEnclosesPoint(t *testing.T) {
	g := unitSquare(t)
	inner := g.ComputeContainingProperFace(mgl64.Vec2{0.5, 0.5}, false)

	tests := []struct {
		name       string
		point      mgl64.Vec2
		includeRim bool
		expected   bool
	}{
		{"centre", mgl64.Vec2{0.5, 0.5}, false, true},
		{"outside", mgl64.Vec2{2, 2}, true, false},
		{"beside an edge", mgl64.Vec2{0.5, -0.5}, true, false},
		{"corner with rim", mgl64.Vec2{0, 0}, true, true},
		{"corner without rim", mgl64.Vec2{0, 0}, false, false},
		{"edge with rim", mgl64.Vec2{0.5, 0}, true, true},
		{"edge without rim", mgl64.Vec2{0.5, 0}, false, false},
		{"near corner within epsilon", mgl64.Vec2{1 + 1e-7, 1}, false, false},
		{"just inside", mgl64.Vec2{1e-3, 1e-3}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inner.EnclosesPoint(tt.point, tt.includeRim); got != tt.expected {
				t.Errorf("EnclosesPoint(%v, %v) = %v, want %v", tt.point, tt.includeRim, got, tt.expected)
			}
		})
	}

	if !g.OuterFace().EnclosesPoint(mgl64.Vec2{1e9, -1e9}, false) {
		t.Errorf("the outer face encloses every point")
	}
}

func TestContainsPoint(t *testing.T) {
	g := triangleWithHole(t)
	outer := g.OuterFace()
	ring := g.ComputeContainingProperFace(mgl64.Vec2{5, 1}, false)
	hole := g.ComputeContainingProperFace(mgl64.Vec2{5, 3}, false)
	holeBoundary := ring.FloatingComponents()[0]

	tests := []struct {
		name     string
		face     *Face[struct{}, struct{}, struct{}]
		point    mgl64.Vec2
		expected bool
	}{
		{"ring outside the hole", ring, mgl64.Vec2{5, 1}, true},
		{"ring inside the hole", ring, mgl64.Vec2{5, 3}, false},
		{"ring outside everything", ring, mgl64.Vec2{20, 0}, false},
		{"hole", hole, mgl64.Vec2{5, 3}, true},
		{"hole outside", hole, mgl64.Vec2{5, 1}, false},
		{"outer face far away", outer, mgl64.Vec2{20, 0}, true},
		{"outer face inside the triangle", outer, mgl64.Vec2{5, 1}, false},
		{"hole boundary inside its interior", holeBoundary, mgl64.Vec2{5, 3}, false},
		{"hole boundary outside", holeBoundary, mgl64.Vec2{5, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.face.ContainsPoint(tt.point, false); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestComputeContainingProperFace_Rim(t *testing.T) {
	g := unitSquare(t)
	inner := g.ComputeContainingProperFace(mgl64.Vec2{0.5, 0.5}, false)
	onEdge := mgl64.Vec2{1, 0.5}

	if got := g.ComputeContainingProperFace(onEdge, false); got != g.OuterFace() {
		t.Errorf("boundary point without rim should stay in the outer face")
	}
	if got := g.ComputeContainingProperFace(onEdge, true); got != inner {
		t.Errorf("boundary point with rim should go to the inner face")
	}
}

func TestFace_Walks(t *testing.T) {
	g := unitSquare(t)
	inner := g.ComputeContainingProperFace(mgl64.Vec2{0.5, 0.5}, false)

	count := 0
	for d := range inner.Darts() {
		if d.Face() != inner {
			t.Errorf("dart %v bounds another face", d)
		}
		count++
	}
	if count != 4 {
		t.Errorf("inner face has %d darts, want 4", count)
	}

	rim := inner.OuterRim()
	if len(rim) != 4 {
		t.Fatalf("len(OuterRim()) = %d, want 4", len(rim))
	}
	if area := geometry.SignedArea(rim); !mgl64.FloatEqualThreshold(area, 1, 1e-9) {
		t.Errorf("rim area = %v, want 1", area)
	}

	i := 0
	for v := range inner.Vertices() {
		if v.Position() != rim[i] {
			t.Errorf("vertex %d at %v, want %v", i, v.Position(), rim[i])
		}
		i++
	}

	want := geometry.AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}}
	if diff := cmp.Diff(want, inner.Bounds()); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}

	outer := g.OuterFace()
	if outer.OuterRim() != nil {
		t.Errorf("the outer face has no rim")
	}
	if !math.IsInf(outer.ComputeArea(true), 1) {
		t.Errorf("outer face area = %v, want +Inf", outer.ComputeArea(true))
	}
	if !outer.Bounds().ContainsPoint(mgl64.Vec2{-1e300, 1e300}) {
		t.Errorf("outer face bounds should be unbounded")
	}
}

func TestRecomputeContainedProperFaces(t *testing.T) {
	sg := newSquareWithDiagonal(t)
	g := mustBuild(t, sg, Options{})

	boundary := g.OuterFace().FloatingComponents()[0]
	before := faceIndices(boundary.ContainedProperFaces())
	if len(before) != 2 {
		t.Fatalf("boundary contains %d proper faces, want 2", len(before))
	}

	boundary.RecomputeContainedProperFaces()
	if diff := cmp.Diff(before, faceIndices(boundary.ContainedProperFaces())); diff != "" {
		t.Errorf("contained faces changed (-want +got):\n%s", diff)
	}

	// proper faces have no contained proper faces
	inner := boundary.ContainedProperFaces()[0]
	inner.RecomputeContainedProperFaces()
	if len(inner.ContainedProperFaces()) != 0 {
		t.Errorf("proper face lists contained proper faces")
	}
}
