package simple

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

func TestFromGeometries_PolygonWithHole(t *testing.T) {
	poly := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {1, 3}, {3, 3}, {3, 1}, {1, 1}},
	})

	g, err := FromGeometries([]geom.T{poly}, 1e-6)
	if err != nil {
		t.Fatalf("FromGeometries: %v", err)
	}

	if len(g.Vertices()) != 8 {
		t.Errorf("len(Vertices()) = %d, want 8", len(g.Vertices()))
	}
	if len(g.Edges()) != 8 {
		t.Errorf("len(Edges()) = %d, want 8", len(g.Edges()))
	}
	for _, v := range g.Vertices() {
		if v.Degree() != 2 {
			t.Errorf("vertex %v has degree %d, want 2", v.Position, v.Degree())
		}
	}
}

func TestFromGeometries_Snapping(t *testing.T) {
	ls1 := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}})
	ls2 := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{1 + 1e-9, 0}, {1, 1}, {1, 1 + 1e-9}})
	pt := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{5, 5})

	g, err := FromGeometries([]geom.T{ls1, ls2, pt}, 1e-6)
	if err != nil {
		t.Fatalf("FromGeometries: %v", err)
	}

	var positions []mgl64.Vec2
	for _, v := range g.Vertices() {
		positions = append(positions, v.Position)
	}
	expected := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {5, 5}}
	if diff := cmp.Diff(expected, positions); diff != "" {
		t.Errorf("vertex positions mismatch (-want +got):\n%s", diff)
	}
	if len(g.Edges()) != 2 {
		t.Errorf("len(Edges()) = %d, want 2", len(g.Edges()))
	}
}

func TestFromGeometries_OpenRingIsClosed(t *testing.T) {
	ring := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {0, 1}})

	g, err := FromGeometries([]geom.T{ring}, 1e-6)
	if err != nil {
		t.Fatalf("FromGeometries: %v", err)
	}
	if len(g.Edges()) != 3 {
		t.Errorf("len(Edges()) = %d, want 3", len(g.Edges()))
	}
}

func TestFromGeometries_Collection(t *testing.T) {
	gc := geom.NewGeometryCollection()
	if err := gc.Push(
		geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{0, 0}),
		geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{1, 0}, {2, 0}}),
	); err != nil {
		t.Fatal(err)
	}

	g, err := FromGeometries([]geom.T{gc}, 1e-6)
	if err != nil {
		t.Fatalf("FromGeometries: %v", err)
	}
	if len(g.Vertices()) != 3 || len(g.Edges()) != 1 {
		t.Errorf("got %d vertices and %d edges, want 3 and 1", len(g.Vertices()), len(g.Edges()))
	}
}

type unsupported struct{ geom.T }

func TestFromGeometries_Unsupported(t *testing.T) {
	_, err := FromGeometries([]geom.T{unsupported{}}, 1e-6)
	if !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("error = %v, want ErrUnsupportedGeometry", err)
	}
}
