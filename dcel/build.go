package dcel

import (
	"github.com/akmonengine/planar/geometry"
	"github.com/akmonengine/planar/simple"
	"github.com/pkg/errors"
)

// Build converts a simple graph into a subdivision. Vertex i of the result
// corresponds to sg.Vertices()[i] and stored dart i to sg.Edges()[i],
// running from the edge start to its end. Edge geometries are cloned. No
// graph is returned on error.
func Build[V, D, F any](sg *simple.Graph, opts Options) (*Graph[V, D, F], error) {
	g := NewGraph[V, D, F](opts)

	for _, sv := range sg.Vertices() {
		g.addVertex(&Vertex[V, D, F]{position: sv.Position})
	}

	for _, e := range sg.Edges() {
		if e.Geometry() == nil {
			return nil, errors.Wrapf(ErrMissingGeometry, "edge %d", e.Index())
		}
		start := g.vertices[e.Start().Index()]
		end := g.vertices[e.End().Index()]

		startToEnd := &Dart[V, D, F]{origin: start, geometry: e.Geometry().Clone()}
		start.dart = startToEnd
		g.addDart(startToEnd)

		endToStart := &Dart[V, D, F]{origin: end, geometry: geometry.Reversed(e.Geometry()), index: -1}
		end.dart = endToStart

		startToEnd.twin = endToStart
		endToStart.twin = startToEnd
	}

	if err := g.linkRotationSystem(sg); err != nil {
		return nil, err
	}

	proper, floating, err := g.traceFaces()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("traced faces", "vertices", len(g.vertices), "darts", len(g.darts),
		"proper", len(proper), "floating", len(floating))

	g.nestFloatingFaces(proper, floating)
	for _, floater := range floating {
		floater.RecomputeContainedProperFaces()
	}

	isolated := 0
	for _, v := range g.vertices {
		if v.dart == nil {
			face := g.ComputeContainingProperFace(v.position, false)
			face.floatingVertices = append(face.floatingVertices, v)
			v.floatingIn = face
			isolated++
		}
	}
	g.logger.Debug("placed isolated vertices", "count", isolated)

	if err := g.SortToContainmentOrder(); err != nil {
		return nil, err
	}

	return g, nil
}

// linkRotationSystem sets next and previous around every vertex. With the
// outgoing darts in clockwise order, the dart after the twin of one
// outgoing dart is the following outgoing dart, so walking next keeps the
// face on the left.
func (g *Graph[V, D, F]) linkRotationSystem(sg *simple.Graph) error {
	for _, sv := range sg.Vertices() {
		if sv.AngularTies(g.eps) {
			return errors.Wrapf(ErrAmbiguousOrder, "vertex %d", sv.Index())
		}

		v := g.vertices[sv.Index()]
		edges := sv.SortedEdges(false)
		outgoing := make([]*Dart[V, D, F], len(edges))
		for i, e := range edges {
			d := g.darts[e.Index()]
			if d.origin != v {
				d = d.twin
			}
			outgoing[i] = d
		}

		for i, d := range outgoing {
			next := outgoing[(i+1)%len(outgoing)]
			d.twin.next = next
			next.previous = d.twin
		}
	}
	return nil
}

// traceFaces creates one face per dart cycle. Cycles with a signed area
// above epsilon are proper, the others floating.
func (g *Graph[V, D, F]) traceFaces() (proper, floating []*Face[V, D, F], err error) {
	visited := make(map[*Dart[V, D, F]]struct{}, 2*len(g.darts))
	limit := 2*len(g.darts) + 2

	trace := func(start *Dart[V, D, F]) error {
		if _, seen := visited[start]; seen {
			return nil
		}

		face := &Face[V, D, F]{dart: start}
		area := 0.0
		walk := start
		for steps := 0; ; steps++ {
			if steps > limit {
				return errors.Wrapf(ErrCorrupt, "face walk from %v does not close", start)
			}
			visited[walk] = struct{}{}
			walk.face = face
			area += geometry.Cross(walk.origin.position, walk.twin.origin.position)
			walk = walk.next
			if walk == start {
				break
			}
		}

		face.floating = 0.5*area <= g.eps
		g.addFace(face)
		if face.floating {
			floating = append(floating, face)
		} else {
			proper = append(proper, face)
		}
		return nil
	}

	for _, d := range g.darts {
		if err := trace(d); err != nil {
			return nil, nil, err
		}
		if err := trace(d.twin); err != nil {
			return nil, nil, err
		}
	}
	return proper, floating, nil
}

// nestFloatingFaces attaches every floating face to the smallest proper face
// enclosing it, or to the outer face. Searches run on the configured
// workers and only read the graph; links are set afterwards.
func (g *Graph[V, D, F]) nestFloatingFaces(proper, floating []*Face[V, D, F]) {
	areas := make([]float64, len(proper))
	bounds := make([]geometry.AABB, len(proper))
	for i, face := range proper {
		areas[i] = face.ComputeArea(false)
		bounds[i] = face.Bounds().Expand(g.eps)
	}
	grid := newFaceGrid(bounds)

	jobs := make([]int, len(floating))
	for i := range jobs {
		jobs[i] = i
	}
	containers := make([]int, len(floating))

	task(g.workers, jobs, func(i int) {
		floater := floating[i]
		test := floater.dart.origin.position
		lowerbound := -floater.ComputeArea(false)

		best := -1
		bestArea := 0.0
		grid.candidates(test, func(candidate int) {
			area := areas[candidate]
			if best >= 0 && area >= bestArea {
				return
			}
			if lowerbound < area+g.eps && proper[candidate].EnclosesPoint(test, false) {
				best = candidate
				bestArea = area
			}
		})
		containers[i] = best
	})

	for i, floater := range floating {
		container := g.faces[0]
		if containers[i] >= 0 {
			container = proper[containers[i]]
		}
		container.floatingComponents = append(container.floatingComponents, floater)
		floater.containing = container
	}
}
