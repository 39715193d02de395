package planar

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/akmonengine/planar/dcel"
	"github.com/akmonengine/planar/geometry"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Config holds the tunables of subdivision construction, usually read from a
// TOML file:
//
//	epsilon   = 1e-6
//	precision = 1e-6
//	workers   = 4
//	verify    = true
//	planarize = true
//	log_level = "debug"
type Config struct {
	// Epsilon is the tolerance for point coincidence and face classification
	Epsilon float64 `toml:"epsilon"`
	// Precision is the distance under which input coordinates snap together
	Precision float64 `toml:"precision"`
	// Workers is the number of goroutines used to nest components
	Workers int `toml:"workers"`
	// Verify runs the structural checks after construction
	Verify bool `toml:"verify"`
	// Planarize splits crossing segments of geometry input before
	// construction
	Planarize bool `toml:"planarize"`
	// LogLevel is a charmbracelet/log level name
	LogLevel string `toml:"log_level"`
	// LogOutput receives the log lines, stderr when nil
	LogOutput io.Writer `toml:"-"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Epsilon:   geometry.DefaultEpsilon,
		Precision: geometry.DefaultEpsilon,
		Workers:   dcel.DEFAULT_WORKERS,
		Planarize: true,
		LogLevel:  "warn",
	}
}

// LoadConfig reads a TOML file over the defaults
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r over the defaults. Unknown keys are an
// error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Epsilon <= 0 {
		return errors.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}
	if c.Precision < 0 {
		return errors.Errorf("precision must not be negative, got %v", c.Precision)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}

func (c Config) logOutput() io.Writer {
	if c.LogOutput == nil {
		return os.Stderr
	}
	return c.LogOutput
}

// Options turns the configuration into dcel options with a logger writing
// to w.
func (c Config) Options(w io.Writer) (dcel.Options, error) {
	if err := c.validate(); err != nil {
		return dcel.Options{}, err
	}
	level, _ := log.ParseLevel(c.LogLevel)

	return dcel.Options{
		Epsilon: c.Epsilon,
		Workers: c.Workers,
		Logger:  newLogger(w, level),
	}, nil
}
