package dcel

import (
	"slices"

	"github.com/akmonengine/planar/geometry"
	"github.com/pkg/errors"
)

// Verify checks the structural invariants of the subdivision and returns the
// first violation wrapped in ErrCorrupt.
func (g *Graph[V, D, F]) Verify() error {
	g.logger.Debug("starting verification",
		"vertices", len(g.vertices), "darts", len(g.darts), "faces", len(g.faces))

	for i, v := range g.vertices {
		if v.index != i {
			return errors.Wrapf(ErrCorrupt, "vertex at %d has index %d", i, v.index)
		}
		if !geometry.IsFinite(v.position) {
			return errors.Wrapf(ErrCorrupt, "vertex %d has position %v", i, v.position)
		}
		if v.dart != nil && v.dart.origin != v {
			return errors.Wrapf(ErrCorrupt, "dart of vertex %d starts elsewhere", i)
		}
	}
	for i, d := range g.darts {
		if d.index != i {
			return errors.Wrapf(ErrCorrupt, "dart at %d has index %d", i, d.index)
		}
		if d.twin == nil || d.twin.index >= 0 {
			return errors.Wrapf(ErrCorrupt, "dart %d has no unstored twin", i)
		}
	}
	for i, f := range g.faces {
		if f.index != i {
			return errors.Wrapf(ErrCorrupt, "face at %d has index %d", i, f.index)
		}
	}
	if len(g.faces) == 0 || !g.faces[0].IsOuterFace() || g.faces[0].floating {
		return errors.Wrap(ErrCorrupt, "face 0 is not the outer face")
	}

	for i, f := range g.faces[1:] {
		if f.dart == nil {
			return errors.Wrapf(ErrCorrupt, "bounded face %d has no dart", i+1)
		}
		if f.dart.face != f {
			return errors.Wrapf(ErrCorrupt, "dart of face %d bounds another face", i+1)
		}
		if !g.ownsDart(f.dart) {
			return errors.Wrapf(ErrCorrupt, "dart of face %d is not in the graph", i+1)
		}
		if f.floating && f.containing == nil {
			return errors.Wrapf(ErrCorrupt, "floating face %d has no containing face", i+1)
		}
	}

	for i, stored := range g.darts {
		for _, d := range [2]*Dart[V, D, F]{stored, stored.twin} {
			if d.next == nil || d.previous == nil || d.face == nil || d.origin == nil {
				return errors.Wrapf(ErrCorrupt, "dart %d is not linked", i)
			}
			if d.next.previous != d || d.previous.next != d {
				return errors.Wrapf(ErrCorrupt, "dart %d: next and previous are not symmetric", i)
			}
			if d.twin.twin != d {
				return errors.Wrapf(ErrCorrupt, "dart %d: twin is not symmetric", i)
			}
			if d.face != d.next.face {
				return errors.Wrapf(ErrCorrupt, "dart %d: next bounds another face", i)
			}
		}
	}

	nfloat := 0
	for _, v := range g.vertices {
		if v.dart == nil {
			nfloat++
		}
	}
	seen := make(map[*Vertex[V, D, F]]struct{}, nfloat)
	for i, f := range g.faces {
		if f.floating && len(f.floatingVertices) > 0 {
			return errors.Wrapf(ErrCorrupt, "floating face %d holds isolated vertices", i)
		}
		for _, floater := range f.floatingVertices {
			if _, dup := seen[floater]; dup {
				return errors.Wrapf(ErrCorrupt, "vertex %d is isolated in several faces", floater.index)
			}
			if floater.floatingIn != f || floater.dart != nil {
				return errors.Wrapf(ErrCorrupt, "vertex %d is not isolated in face %d", floater.index, i)
			}
			seen[floater] = struct{}{}
			nfloat--
		}
	}
	if nfloat != 0 {
		return errors.Wrapf(ErrCorrupt, "%d isolated vertices are not registered with a face", nfloat)
	}

	for i, f := range g.faces {
		for _, floater := range f.floatingComponents {
			if !floater.floating || floater.containing != f {
				return errors.Wrapf(ErrCorrupt, "face %d lists face %d as a component it does not contain", i, floater.index)
			}
		}
	}
	containedIn := make(map[*Face[V, D, F]]int, len(g.faces))
	for i, f := range g.faces {
		if !f.floating {
			continue
		}
		if !slices.Contains(f.containing.floatingComponents, f) {
			return errors.Wrapf(ErrCorrupt, "floating face %d is missing from the components of face %d", i, f.containing.index)
		}
		for _, contained := range f.containedProper {
			if contained.floating || contained.IsOuterFace() {
				return errors.Wrapf(ErrCorrupt, "floating face %d contains face %d which is not a bounded proper face", i, contained.index)
			}
			if prev, dup := containedIn[contained]; dup {
				return errors.Wrapf(ErrCorrupt, "face %d is contained in floating faces %d and %d", contained.index, prev, i)
			}
			containedIn[contained] = i
		}
	}
	for i, f := range g.faces[1:] {
		if _, ok := containedIn[f]; !f.floating && !ok {
			return errors.Wrapf(ErrCorrupt, "proper face %d is not contained in any floating face", i+1)
		}
	}

	limit := 2*len(g.darts) + 2
	for i, stored := range g.darts {
		for _, d := range [2]*Dart[V, D, F]{stored, stored.twin} {
			walk := d
			remaining := limit
			for {
				if remaining <= 0 {
					return errors.Wrapf(ErrCorrupt, "face walk from dart %d does not close", i)
				}
				walk = walk.next
				remaining--
				if walk == d {
					break
				}
			}
		}
	}

	g.logger.Debug("verification passed")
	return nil
}
