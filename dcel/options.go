package dcel

import (
	"io"

	"github.com/akmonengine/planar/geometry"
	"github.com/charmbracelet/log"
)

// DEFAULT_WORKERS is the number of goroutines used for nesting resolution
// when Options.Workers is not set.
const DEFAULT_WORKERS = 1

// Options tunes a Graph
type Options struct {
	// Epsilon is the tolerance for point coincidence and for classifying a
	// boundary cycle: a cycle whose signed area is <= Epsilon is floating.
	// Results for cycles within Epsilon of zero area are not stable.
	Epsilon float64
	// Workers is the number of goroutines used by the read-only phases of
	// construction.
	Workers int
	// Logger receives debug output; nil discards it
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = geometry.DefaultEpsilon
	}
	o.Workers = max(DEFAULT_WORKERS, o.Workers)
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
