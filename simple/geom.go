package simple

import (
	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// FromGeometries converts go-geom geometries into a graph of straight
// edges. Coordinates within precision of an existing vertex are snapped onto
// it, segments shorter than precision are skipped and repeated edges are
// stored once. Only the XY components of each coordinate are used.
func FromGeometries(geometries []geom.T, precision float64) (*Graph, error) {
	g := New()
	for i, t := range geometries {
		if err := g.AddGeometry(t, precision); err != nil {
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
	}
	return g, nil
}

// AddGeometry adds the vertices and edges of t to the graph
func (g *Graph) AddGeometry(t geom.T, precision float64) error {
	switch v := t.(type) {
	case *geom.Point:
		if v.Empty() {
			return nil
		}
		g.getOrAddVertex(toVec2(v.Coords()), precision)
	case *geom.MultiPoint:
		for i := 0; i < v.NumPoints(); i++ {
			if err := g.AddGeometry(v.Point(i), precision); err != nil {
				return err
			}
		}
	case *geom.LineString:
		return g.addChain(v.Coords(), false, precision)
	case *geom.LinearRing:
		return g.addChain(v.Coords(), true, precision)
	case *geom.MultiLineString:
		for i := 0; i < v.NumLineStrings(); i++ {
			if err := g.addChain(v.LineString(i).Coords(), false, precision); err != nil {
				return err
			}
		}
	case *geom.Polygon:
		for i := 0; i < v.NumLinearRings(); i++ {
			if err := g.addChain(v.LinearRing(i).Coords(), true, precision); err != nil {
				return err
			}
		}
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			if err := g.AddGeometry(v.Polygon(i), precision); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for _, part := range v.Geoms() {
			if err := g.AddGeometry(part, precision); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(ErrUnsupportedGeometry, "%T", t)
	}
	return nil
}

// addChain adds the segments between consecutive coordinates, closing the
// chain back to its first coordinate when closed is set.
func (g *Graph) addChain(coords []geom.Coord, closed bool, precision float64) error {
	if len(coords) == 0 {
		return nil
	}

	first := g.getOrAddVertex(toVec2(coords[0]), precision)
	start := first
	for _, c := range coords[1:] {
		end := g.getOrAddVertex(toVec2(c), precision)
		if end == start {
			// shorter than precision
			continue
		}
		if _, err := g.AddEdge(start, end, geometry.NewSegment(start.Position, end.Position)); err != nil {
			return err
		}
		start = end
	}

	if closed && start != first {
		if _, err := g.AddEdge(start, first, geometry.NewSegment(start.Position, first.Position)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) getOrAddVertex(position mgl64.Vec2, precision float64) *Vertex {
	if v := g.FindVertex(position, precision); v != nil {
		return v
	}
	return g.AddVertex(position)
}

func toVec2(c geom.Coord) mgl64.Vec2 {
	return mgl64.Vec2{c.X(), c.Y()}
}
