package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSchemaType = errors.New("unknown schema type")

type SchemaType string

const (
	SchemaTypeAvro     SchemaType = "AVRO"
	SchemaTypeProtobuf SchemaType = "PROTOBUF"
	SchemaTypeJSON     SchemaType = "JSON"
)

// DefaultSchemaType is assumed when a registration omits schemaType.
const DefaultSchemaType = SchemaTypeAvro

func (t SchemaType) IsValid() bool {
	return t == SchemaTypeAvro || t == SchemaTypeProtobuf || t == SchemaTypeJSON
}

func (t SchemaType) String() string {
	return string(t)
}

// ParseSchemaType accepts the wire spelling in any case. An empty value
// resolves to DefaultSchemaType.
func ParseSchemaType(value string) (SchemaType, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultSchemaType, nil
	}
	parsed := SchemaType(strings.ToUpper(value))
	if !parsed.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownSchemaType, value)
	}
	return parsed, nil
}

func NormalizeSchemaType(t SchemaType) SchemaType {
	if t.IsValid() {
		return t
	}
	return DefaultSchemaType
}

// Schema is an immutable registered schema. Canonical is the provider's
// re-serialization and Fingerprint is its dedup key.
type Schema struct {
	ID          int
	Type        SchemaType
	Canonical   string
	Fingerprint string
}

// SubjectVersion points one subject version at a schema.
type SubjectVersion struct {
	Subject  string
	Version  int
	SchemaID int
}

// VersionedSchema is a subject version joined with its schema.
type VersionedSchema struct {
	Subject string
	Version int
	Schema  Schema
}

// Snapshot is a point-in-time copy of registry state, ordered by schema id
// and by subject registration order.
type Snapshot struct {
	Schemas       []Schema
	Versions      []SubjectVersion
	Global        CompatibilityLevel
	SubjectLevels map[string]CompatibilityLevel
}
