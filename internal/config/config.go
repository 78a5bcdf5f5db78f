// Package config loads gqlcheck.toml, the per-project settings file that
// controls analyzer limits, the diagnostic cap, caching, and tracing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the settings file looked up from the working directory
// upward.
const ManifestName = "gqlcheck.toml"

// Limits holds the analyzer thresholds. Zero disables a limit.
type Limits struct {
	MaxDepth       int `toml:"max_depth"`
	MaxComplexity  int `toml:"max_complexity"`
	MaxAliases     int `toml:"max_aliases"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Cache controls the on-disk report cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty selects the user cache directory
}

// Trace controls the execution tracer.
type Trace struct {
	Level  string `toml:"level"`  // off|phase|query|debug
	Mode   string `toml:"mode"`   // stream|ring|both
	Output string `toml:"output"` // file path, empty for stderr
}

// Config is the decoded gqlcheck.toml.
type Config struct {
	Limits Limits `toml:"limits"`
	Cache  Cache  `toml:"cache"`
	Trace  Trace  `toml:"trace"`
}

// Default returns the settings used when no manifest exists.
func Default() Config {
	return Config{
		Limits: Limits{
			MaxDepth:       15,
			MaxComplexity:  300,
			MaxAliases:     30,
			MaxDiagnostics: 100,
		},
		Cache: Cache{Enabled: true},
		Trace: Trace{Level: "off", Mode: "stream"},
	}
}

// ErrNotFound indicates that no manifest exists at or above the start
// directory.
var ErrNotFound = errors.New("gqlcheck.toml not found")

// Load decodes the manifest at path. Unknown keys are an error so typos
// fail loudly instead of silently running with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover walks from dir to the filesystem root looking for the
// manifest. Returns ErrNotFound when no manifest exists; callers fall back
// to Default then.
func Discover(dir string) (Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, "", err
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return Default(), "", ErrNotFound
		}
		abs = parent
	}
}

func (c Config) validate(path string) error {
	if c.Limits.MaxDepth < 0 || c.Limits.MaxComplexity < 0 ||
		c.Limits.MaxAliases < 0 || c.Limits.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: limits must not be negative", path)
	}
	switch c.Trace.Level {
	case "", "off", "phase", "query", "debug":
	default:
		return fmt.Errorf("%s: unknown trace level %q", path, c.Trace.Level)
	}
	switch c.Trace.Mode {
	case "", "stream", "ring", "both":
	default:
		return fmt.Errorf("%s: unknown trace mode %q", path, c.Trace.Mode)
	}
	return nil
}
