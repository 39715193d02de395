package simple

import (
	"testing"

	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

func segment(a, b *Vertex) geometry.Oriented {
	return geometry.NewSegment(a.Position, b.Position)
}

func TestAddEdge(t *testing.T) {
	g := New()
	a := g.AddVertex(mgl64.Vec2{0, 0})
	b := g.AddVertex(mgl64.Vec2{1, 0})

	e, err := g.AddEdge(a, b, geometry.NewSegment(mgl64.Vec2{5, 5}, mgl64.Vec2{6, 6}))
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if e.Geometry().Start() != a.Position || e.Geometry().End() != b.Position {
		t.Errorf("geometry endpoints not snapped: %v -> %v", e.Geometry().Start(), e.Geometry().End())
	}
	if a.Degree() != 1 || b.Degree() != 1 {
		t.Errorf("degrees = %d, %d, want 1, 1", a.Degree(), b.Degree())
	}
	if e.Other(a) != b || e.Other(b) != a {
		t.Errorf("Other() returned the wrong endpoint")
	}

	dup, err := g.AddEdge(b, a, segment(b, a))
	if err != nil {
		t.Fatalf("AddEdge duplicate: %v", err)
	}
	if dup != e {
		t.Errorf("duplicate edge should return the existing edge")
	}
	if len(g.Edges()) != 1 {
		t.Errorf("len(Edges()) = %d, want 1", len(g.Edges()))
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := New()
	a := g.AddVertex(mgl64.Vec2{0, 0})
	b := g.AddVertex(mgl64.Vec2{1, 0})
	foreign := New().AddVertex(mgl64.Vec2{2, 0})

	tests := []struct {
		name     string
		from, to *Vertex
		geom     geometry.Oriented
		expected error
	}{
		{"nil vertex", nil, b, geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), ErrNilVertex},
		{"foreign vertex", a, foreign, geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), ErrForeignVertex},
		{"self loop", a, a, geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), ErrSelfLoop},
		{"missing geometry", a, b, nil, ErrMissingGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.AddEdge(tt.from, tt.to, tt.geom)
			if !errors.Is(err, tt.expected) {
				t.Errorf("AddEdge error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestRemoveVertex(t *testing.T) {
	g := New()
	a := g.AddVertex(mgl64.Vec2{0, 0})
	b := g.AddVertex(mgl64.Vec2{1, 0})
	c := g.AddVertex(mgl64.Vec2{0, 1})
	mustEdge(t, g, a, b)
	mustEdge(t, g, b, c)
	mustEdge(t, g, c, a)

	if err := g.RemoveVertex(a); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}

	if len(g.Vertices()) != 2 || len(g.Edges()) != 1 {
		t.Fatalf("after removal: %d vertices, %d edges, want 2, 1", len(g.Vertices()), len(g.Edges()))
	}
	for i, v := range g.Vertices() {
		if v.Index() != i {
			t.Errorf("vertex at %d has index %d", i, v.Index())
		}
	}
	for i, e := range g.Edges() {
		if e.Index() != i {
			t.Errorf("edge at %d has index %d", i, e.Index())
		}
	}
	if a.Index() != -1 {
		t.Errorf("removed vertex index = %d, want -1", a.Index())
	}
	if b.Degree() != 1 || c.Degree() != 1 {
		t.Errorf("degrees after removal = %d, %d, want 1, 1", b.Degree(), c.Degree())
	}

	if err := g.RemoveVertex(a); !errors.Is(err, ErrForeignVertex) {
		t.Errorf("removing twice: error = %v, want ErrForeignVertex", err)
	}
}

func TestFindVertex(t *testing.T) {
	g := New()
	a := g.AddVertex(mgl64.Vec2{1, 1})

	if got := g.FindVertex(mgl64.Vec2{1 + 1e-8, 1}, 1e-6); got != a {
		t.Errorf("FindVertex within precision = %v, want %v", got, a)
	}
	if got := g.FindVertex(mgl64.Vec2{1.1, 1}, 1e-6); got != nil {
		t.Errorf("FindVertex outside precision = %v, want nil", got)
	}
}

func mustEdge(t *testing.T, g *Graph, a, b *Vertex) *Edge {
	t.Helper()
	e, err := g.AddEdge(a, b, segment(a, b))
	if err != nil {
		t.Fatalf("AddEdge(%v, %v): %v", a.Position, b.Position, err)
	}
	return e
}
