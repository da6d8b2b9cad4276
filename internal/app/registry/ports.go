package registry

import (
	"context"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

// ParsedSchema is the canonical form a format provider produces. Two parsed
// schemas of the same type are equal iff their fingerprints are equal.
type ParsedSchema interface {
	Type() domain.SchemaType
	Canonical() string
	Fingerprint() string
}

type Parser interface {
	Parse(ctx context.Context, schemaType domain.SchemaType, raw string) (ParsedSchema, error)
	Types() []domain.SchemaType
}

// Store is the identity and versioning state machine. Schema values passed
// to Register and Lookup carry no ID; the store assigns or resolves it.
type Store interface {
	Register(ctx context.Context, subject string, schema domain.Schema) (RegisterResult, error)
	SchemaByID(ctx context.Context, id int) (domain.Schema, error)
	Version(ctx context.Context, subject string, selector domain.VersionSelector) (domain.VersionedSchema, error)
	Versions(ctx context.Context, subject string) ([]int, error)
	Subjects(ctx context.Context) ([]string, error)
	Lookup(ctx context.Context, subject string, schema domain.Schema) (domain.VersionedSchema, error)
	DeleteSubject(ctx context.Context, subject string) ([]int, error)
	UsagesByID(ctx context.Context, id int) ([]domain.SubjectVersion, error)

	GlobalCompatibility(ctx context.Context) (domain.CompatibilityLevel, error)
	SetGlobalCompatibility(ctx context.Context, level domain.CompatibilityLevel) error
	SubjectCompatibility(ctx context.Context, subject string) (domain.CompatibilityLevel, bool, error)
	SetSubjectCompatibility(ctx context.Context, subject string, level domain.CompatibilityLevel) error
	DeleteSubjectCompatibility(ctx context.Context, subject string) (domain.CompatibilityLevel, error)
}
