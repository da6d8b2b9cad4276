package sqliteexport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

var ErrPathRequired = errors.New("sqlite path required")

// Meta describes the registry instance a snapshot was taken from.
type Meta struct {
	InstanceID string
	ExportedAt time.Time
}

// Store writes registry snapshots into a SQLite file. Each Write replaces the
// previous contents so the file always holds exactly one snapshot.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	if shouldCreateDir(path) {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Write(ctx context.Context, snapshot domain.Snapshot, meta Meta) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"subject_versions", "schemas", "compatibility", "export_meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO export_meta (id, instance_id, exported_at) VALUES (1, ?, ?)
	`, meta.InstanceID, meta.ExportedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write export meta: %w", err)
	}

	for _, schema := range snapshot.Schemas {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO schemas (id, schema_type, fingerprint, canonical) VALUES (?, ?, ?, ?)
		`, schema.ID, schema.Type.String(), schema.Fingerprint, schema.Canonical); err != nil {
			return fmt.Errorf("write schema %d: %w", schema.ID, err)
		}
	}

	for _, version := range snapshot.Versions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO subject_versions (subject, version, schema_id) VALUES (?, ?, ?)
		`, version.Subject, version.Version, version.SchemaID); err != nil {
			return fmt.Errorf("write %s version %d: %w", version.Subject, version.Version, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO compatibility (subject, level) VALUES ('', ?)
	`, snapshot.Global.String()); err != nil {
		return fmt.Errorf("write global compatibility: %w", err)
	}
	subjects := make([]string, 0, len(snapshot.SubjectLevels))
	for subject := range snapshot.SubjectLevels {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	for _, subject := range subjects {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO compatibility (subject, level) VALUES (?, ?)
		`, subject, snapshot.SubjectLevels[subject].String()); err != nil {
			return fmt.Errorf("write compatibility for %s: %w", subject, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	statements := []struct {
		name string
		stmt string
	}{
		{"export_meta", `
			CREATE TABLE IF NOT EXISTS export_meta (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				instance_id TEXT NOT NULL,
				exported_at TEXT NOT NULL
			)
		`},
		{"schemas", `
			CREATE TABLE IF NOT EXISTS schemas (
				id INTEGER PRIMARY KEY,
				schema_type TEXT NOT NULL,
				fingerprint TEXT NOT NULL,
				canonical TEXT NOT NULL,
				UNIQUE (schema_type, fingerprint)
			)
		`},
		{"subject_versions", `
			CREATE TABLE IF NOT EXISTS subject_versions (
				subject TEXT NOT NULL,
				version INTEGER NOT NULL CHECK (version >= 1),
				schema_id INTEGER NOT NULL REFERENCES schemas(id),
				PRIMARY KEY (subject, version)
			)
		`},
		{"compatibility", `
			CREATE TABLE IF NOT EXISTS compatibility (
				subject TEXT PRIMARY KEY,
				level TEXT NOT NULL
			)
		`},
	}
	for _, st := range statements {
		if _, err := s.db.ExecContext(ctx, st.stmt); err != nil {
			return fmt.Errorf("create %s table: %w", st.name, err)
		}
	}
	return nil
}

func shouldCreateDir(path string) bool {
	if path == ":memory:" {
		return false
	}
	if strings.HasPrefix(path, "file:") {
		return false
	}
	return true
}
