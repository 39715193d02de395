package planar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := Config{Epsilon: 1e-6, Precision: 1e-6, Workers: 1, Planarize: true, LogLevel: "warn"}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Config
		wantErr  bool
	}{
		{
			name:     "empty keeps defaults",
			input:    "",
			expected: DefaultConfig(),
		},
		{
			name: "all keys",
			input: `
epsilon = 1e-9
precision = 0.5
workers = 4
verify = true
planarize = false
log_level = "debug"
`,
			expected: Config{Epsilon: 1e-9, Precision: 0.5, Workers: 4, Verify: true, LogLevel: "debug"},
		},
		{
			name:     "partial",
			input:    "workers = 8\n",
			expected: Config{Epsilon: 1e-6, Precision: 1e-6, Workers: 8, Planarize: true, LogLevel: "warn"},
		},
		{name: "log output is not a key", input: "log_output = \"stdout\"\n", wantErr: true},
		{name: "unknown key", input: "epsilom = 1e-6\n", wantErr: true},
		{name: "invalid toml", input: "epsilon = \n", wantErr: true},
		{name: "zero epsilon", input: "epsilon = 0.0\n", wantErr: true},
		{name: "negative workers", input: "workers = -1\n", wantErr: true},
		{name: "unknown level", input: "log_level = \"loud\"\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeConfig(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("DecodeConfig() = %+v, want error", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("DecodeConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planar.toml")
	if err := os.WriteFile(path, []byte("verify = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Verify {
		t.Errorf("Verify not read from file")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("LoadConfig of a missing file should fail")
	}
}

func TestConfig_Options(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Workers = 3
	cfg.LogLevel = "debug"

	opts, err := cfg.Options(&buf)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Epsilon != cfg.Epsilon || opts.Workers != 3 || opts.Logger == nil {
		t.Errorf("Options() = %+v", opts)
	}

	opts.Logger.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("logger did not write at debug level: %q", buf.String())
	}

	cfg.LogLevel = "nope"
	if _, err := cfg.Options(&buf); err == nil {
		t.Errorf("Options with an unknown level should fail")
	}
}
