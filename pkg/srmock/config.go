package srmock

import (
	"log/slog"
	"strings"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

type SchemaType string

const (
	TypeAvro     SchemaType = SchemaType(domain.SchemaTypeAvro)
	TypeProtobuf SchemaType = SchemaType(domain.SchemaTypeProtobuf)
	TypeJSON     SchemaType = SchemaType(domain.SchemaTypeJSON)
)

type CompatibilityLevel string

const (
	CompatBackward           CompatibilityLevel = CompatibilityLevel(domain.CompatibilityBackward)
	CompatBackwardTransitive CompatibilityLevel = CompatibilityLevel(domain.CompatibilityBackwardTransitive)
	CompatForward            CompatibilityLevel = CompatibilityLevel(domain.CompatibilityForward)
	CompatForwardTransitive  CompatibilityLevel = CompatibilityLevel(domain.CompatibilityForwardTransitive)
	CompatFull               CompatibilityLevel = CompatibilityLevel(domain.CompatibilityFull)
	CompatFullTransitive     CompatibilityLevel = CompatibilityLevel(domain.CompatibilityFullTransitive)
	CompatNone               CompatibilityLevel = CompatibilityLevel(domain.CompatibilityNone)
)

const DefaultAddr = "127.0.0.1:0"

// Config defines one emulator instance. The zero value is usable; New fills
// the defaults.
type Config struct {
	// Addr is the listen address used by Start. Port 0 picks a free port.
	Addr string
	// Logger receives request and lifecycle logs. Nil discards them.
	Logger *slog.Logger
	// Compatibility is the initial global level reported by GET /config.
	Compatibility CompatibilityLevel
	// SeedDir, when set, is scanned by New for <subject>.avsc|.proto|.json
	// files which are registered before the registry is returned.
	SeedDir string
	// ExportPath, when set, receives a SQLite snapshot on Close.
	ExportPath string
}

func DefaultConfig() Config {
	return Config{
		Addr:          DefaultAddr,
		Compatibility: CompatBackward,
	}
}

func normalizeConfig(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Compatibility == "" {
		cfg.Compatibility = CompatBackward
	}
	level, err := domain.ParseCompatibilityLevel(string(cfg.Compatibility))
	if err != nil {
		return cfg, err
	}
	cfg.Compatibility = CompatibilityLevel(level)
	return cfg, nil
}
