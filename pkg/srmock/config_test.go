package srmock

import "testing"

func TestNormalizeConfig(t *testing.T) {
	cfg, err := normalizeConfig(Config{Compatibility: "full"})
	if err != nil {
		t.Fatalf("normalizeConfig returned error: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Compatibility != CompatFull {
		t.Fatalf("expected FULL, got %s", cfg.Compatibility)
	}

	cfg, err = normalizeConfig(Config{})
	if err != nil {
		t.Fatalf("normalizeConfig returned error: %v", err)
	}
	if cfg.Compatibility != CompatBackward {
		t.Fatalf("expected BACKWARD default, got %s", cfg.Compatibility)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Addr != "127.0.0.1:0" || cfg.Compatibility != CompatBackward {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
