// Package planar builds planar subdivisions from line work. It wires
// configuration and logging around the dcel package for callers that do not
// need their own payload types.
package planar

import (
	"github.com/akmonengine/planar/dcel"
	"github.com/akmonengine/planar/simple"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// Subdivision is a subdivision without payloads
type Subdivision = dcel.Graph[struct{}, struct{}, struct{}]

// Build converts sg into a subdivision, logging to cfg.LogOutput. sg must
// already be planar.
func Build(sg *simple.Graph, cfg Config) (*Subdivision, error) {
	opts, err := cfg.Options(cfg.logOutput())
	if err != nil {
		return nil, err
	}
	return build(sg, cfg, opts)
}

// BuildFromGeometries snaps the coordinates of geometries within
// cfg.Precision into a simple graph and converts it into a subdivision. With
// cfg.Planarize set, crossing segments are split first.
func BuildFromGeometries(geometries []geom.T, cfg Config) (*Subdivision, error) {
	opts, err := cfg.Options(cfg.logOutput())
	if err != nil {
		return nil, err
	}

	sg, err := simple.FromGeometries(geometries, cfg.Precision)
	if err != nil {
		return nil, err
	}

	if cfg.Planarize {
		fixes, err := sg.Planarize(cfg.Epsilon)
		if err != nil {
			return nil, errors.Wrap(err, "planarize")
		}
		opts.Logger.Debug("planarized input", "splits", fixes)
	}

	return build(sg, cfg, opts)
}

func build(sg *simple.Graph, cfg Config, opts dcel.Options) (*Subdivision, error) {
	g, err := dcel.Build[struct{}, struct{}, struct{}](sg, opts)
	if err != nil {
		return nil, errors.Wrap(err, "build subdivision")
	}

	if cfg.Verify {
		if err := g.Verify(); err != nil {
			return nil, err
		}
	}

	opts.Logger.Debug("built subdivision",
		"vertices", len(g.Vertices()), "edges", len(g.Darts()), "faces", len(g.Faces()))
	return g, nil
}
