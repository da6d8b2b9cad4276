package jsonschema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
	"github.com/osvaldoandrade/srmock/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/srmock/internal/infra/hash"
)

const resourceURL = "schema.json"

var ErrExternalReference = errors.New("external schema references are not resolved")

type Schema struct {
	compiled    *jsonschemav5.Schema
	canonical   string
	fingerprint string
}

func (s *Schema) Type() domain.SchemaType        { return domain.SchemaTypeJSON }
func (s *Schema) Canonical() string              { return s.canonical }
func (s *Schema) Fingerprint() string            { return s.fingerprint }
func (s *Schema) Compiled() *jsonschemav5.Schema { return s.compiled }

// Provider compiles JSON Schema documents and keys them by their RFC 8785
// canonical form.
type Provider struct {
	canonicalizer canonicaljson.Canonicalizer
}

func (p Provider) Parse(ctx context.Context, raw string) (registry.ParsedSchema, error) {
	canonical, err := p.canonicalizer.Canonicalize(ctx, []byte(raw))
	if err != nil {
		return nil, err
	}

	compiler := jsonschemav5.NewCompiler()
	compiler.LoadURL = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("%w: %s", ErrExternalReference, url)
	}
	if err := compiler.AddResource(resourceURL, bytes.NewReader(canonical)); err != nil {
		return nil, fmt.Errorf("load json schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile json schema: %w", err)
	}

	return &Schema{
		compiled:    compiled,
		canonical:   string(canonical),
		fingerprint: hash.Fingerprint(canonical),
	}, nil
}
