package srmock

import (
	"context"
	"log/slog"
	"testing"
)

type Option func(*Config)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

func WithCompatibility(level CompatibilityLevel) Option {
	return func(cfg *Config) { cfg.Compatibility = level }
}

func WithSeedDir(dir string) Option {
	return func(cfg *Config) { cfg.SeedDir = dir }
}

func WithExportPath(path string) Option {
	return func(cfg *Config) { cfg.ExportPath = path }
}

func WithAddr(addr string) Option {
	return func(cfg *Config) { cfg.Addr = addr }
}

// NewForTest starts a fresh registry for t and closes it during cleanup. Every
// call gets its own store, so parallel tests never share schema ids.
func NewForTest(t testing.TB, opts ...Option) *Registry {
	t.Helper()

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("srmock: new registry: %v", err)
	}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("srmock: start registry: %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Errorf("srmock: close registry: %v", err)
		}
	})
	return r
}
