package avroschema

import (
	"context"
	"fmt"

	"github.com/amient/avro"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
	"github.com/osvaldoandrade/srmock/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/srmock/internal/infra/hash"
)

// Schema is a validated Avro definition. Its canonical text is the RFC 8785
// form of the submitted document, so logicalType and custom attributes
// survive while whitespace and key order do not matter.
type Schema struct {
	avro        avro.Schema
	canonical   string
	fingerprint string
}

func (s *Schema) Type() domain.SchemaType { return domain.SchemaTypeAvro }
func (s *Schema) Canonical() string       { return s.canonical }
func (s *Schema) Fingerprint() string     { return s.fingerprint }
func (s *Schema) Avro() avro.Schema       { return s.avro }

type Provider struct {
	canonicalizer canonicaljson.Canonicalizer
}

func (p Provider) Parse(ctx context.Context, raw string) (registry.ParsedSchema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canonical, err := p.canonicalizer.CanonicalizeString(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("parse avro schema: %w", err)
	}
	parsed, err := validate(raw)
	if err != nil {
		return nil, err
	}

	return &Schema{
		avro:        parsed,
		canonical:   canonical,
		fingerprint: hash.FingerprintString(canonical),
	}, nil
}

// validate runs the avro parser, which panics on some well-formed JSON that
// lacks required attributes (a record without a name, an enum without
// symbols).
func validate(raw string) (parsed avro.Schema, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			parsed = nil
			err = fmt.Errorf("parse avro schema: %v", recovered)
		}
	}()

	parsed, err = avro.ParseSchema(raw)
	if err != nil {
		return nil, fmt.Errorf("parse avro schema: %w", err)
	}
	return parsed, nil
}
