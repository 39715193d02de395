package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/planar"
	"github.com/akmonengine/planar/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/twpayne/go-geom"
)

// square returns the closed ring of an axis-aligned square
func square(lo, size float64) []geom.Coord {
	hi := lo + size
	return []geom.Coord{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}, {lo, lo}}
}

// SetupScene builds three nested squares, each as its own polygon, and an
// isolated point in the innermost one.
func SetupScene(cfg planar.Config) (*planar.Subdivision, error) {
	geometries := []geom.T{
		geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{square(0, 12)}),
		geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{square(2, 8)}),
		geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{square(4, 4)}),
		geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{6, 6}),
	}

	return planar.BuildFromGeometries(geometries, cfg)
}

func loadConfig() (planar.Config, error) {
	if len(os.Args) > 1 {
		return planar.LoadConfig(os.Args[1])
	}
	cfg := planar.DefaultConfig()
	cfg.Verify = true
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := SetupScene(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Nested squares")
	fmt.Println("==============")
	fmt.Printf("%d vertices, %d edges, %d faces\n\n", len(g.Vertices()), len(g.Darts()), len(g.Faces()))

	for _, f := range g.Faces() {
		switch {
		case f.IsOuterFace():
			fmt.Printf("face %d: outer, %d floating components\n", f.Index(), len(f.FloatingComponents()))
		case f.IsFloatingFace():
			fmt.Printf("face %d: floating in face %d, depth %d, area %.1f\n",
				f.Index(), f.ContainingProperFace().Index(), f.NestingDepth(), f.ComputeArea(false))
		default:
			fmt.Printf("face %d: proper, depth %d, area %.1f (%.1f without holes), %d isolated vertices\n",
				f.Index(), f.NestingDepth(), f.ComputeArea(false), f.ComputeArea(true), len(f.FloatingVertices()))
		}
	}
	fmt.Println()

	for _, p := range []mgl64.Vec2{{1, 1}, {3, 3}, {5, 5}, {2, 6}, {20, 0}} {
		face := g.ComputeContainingProperFace(p, false)
		fmt.Printf("point %v lies in face %d (depth %d)\n", p, face.Index(), face.NestingDepth())
	}
	fmt.Println()

	// insert a vertex on the bottom edge of the outer square and take it out again
	bottom := g.Darts()[0]
	v, err := g.SplitEdge(bottom, mgl64.Vec2{6, 0},
		geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}),
		geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("split %v at %v, degree %d\n", bottom, v.Position(), v.Degree())

	if err := g.MergeDartAtOrigin(v.Dart(), geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{}), geometry.NewSegment(mgl64.Vec2{}, mgl64.Vec2{})); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("merged back into %v\n", bottom)

	if err := g.Verify(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("verification passed")
}
