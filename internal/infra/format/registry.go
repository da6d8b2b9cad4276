package format

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
	"github.com/osvaldoandrade/srmock/internal/infra/avroschema"
	"github.com/osvaldoandrade/srmock/internal/infra/jsonschema"
	"github.com/osvaldoandrade/srmock/internal/infra/protoschema"
)

// Provider turns raw schema text of one format into its canonical form.
type Provider interface {
	Parse(ctx context.Context, raw string) (registry.ParsedSchema, error)
}

// Registry dispatches parsing by schema type. It satisfies registry.Parser.
type Registry struct {
	mu        sync.RWMutex
	providers map[domain.SchemaType]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[domain.SchemaType]Provider)}
}

// Builtin returns a registry with the Avro, Protobuf and JSON Schema
// providers installed.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(domain.SchemaTypeAvro, avroschema.Provider{})
	r.Register(domain.SchemaTypeProtobuf, protoschema.Provider{})
	r.Register(domain.SchemaTypeJSON, jsonschema.Provider{})
	return r
}

func (r *Registry) Register(schemaType domain.SchemaType, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[schemaType] = provider
}

func (r *Registry) Default() domain.SchemaType {
	return domain.DefaultSchemaType
}

func (r *Registry) Parse(ctx context.Context, schemaType domain.SchemaType, raw string) (registry.ParsedSchema, error) {
	r.mu.RLock()
	provider, ok := r.providers[schemaType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrUnsupportedSchemaType, schemaType)
	}

	parsed, err := provider.Parse(ctx, raw)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", registry.ErrInvalidSchema, err)
	}
	return parsed, nil
}

func (r *Registry) Types() []domain.SchemaType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.SchemaType, 0, len(r.providers))
	for schemaType := range r.providers {
		types = append(types, schemaType)
	}
	slices.Sort(types)
	return types
}
