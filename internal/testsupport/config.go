// Package testsupport provides shared fixtures for picflow tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"picflow/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The manifest is disabled by default; tests that exercise it opt in with
// WithManifest.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Manifest.Enabled = false
	cfg.Manifest.Path = filepath.Join(base, "manifest.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithManifest enables the placement manifest on the test config.
func WithManifest() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Manifest.Enabled = true
	}
}

// WithVideoExtensions overrides the video extension set on the test config.
func WithVideoExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Import.VideoExtensions = exts
	}
}
