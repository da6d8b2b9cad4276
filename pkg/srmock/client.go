package srmock

import (
	"context"
	"strconv"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
)

// Schema is a schema payload as a producer would submit it. An empty Type
// means AVRO.
type Schema struct {
	Type       SchemaType
	Schema     string
	References []Reference
}

type Reference struct {
	Name    string
	Subject string
	Version int
}

// SubjectSchema is a registered subject version. Schema holds the canonical
// text the registry echoes to clients.
type SubjectSchema struct {
	Subject string
	Version int
	ID      int
	Type    SchemaType
	Schema  string
}

type Registration struct {
	ID      int
	Version int
}

type Usage struct {
	Subject string
	Version int
}

// The methods below run against the store directly, without HTTP. They see
// exactly what a wire client would.

func (r *Registry) Register(ctx context.Context, subject string, schema Schema) (Registration, error) {
	result, err := r.service.Register(ctx, subject, toRequest(schema))
	if err != nil {
		return Registration{}, err
	}
	return Registration{ID: result.ID, Version: result.Version}, nil
}

func (r *Registry) SchemaByID(ctx context.Context, id int) (Schema, error) {
	schema, err := r.service.SchemaByID(ctx, id)
	if err != nil {
		return Schema{}, err
	}
	return Schema{Type: SchemaType(schema.Type), Schema: schema.Canonical}, nil
}

func (r *Registry) SchemaByVersion(ctx context.Context, subject string, version int) (SubjectSchema, error) {
	found, err := r.service.Version(ctx, subject, strconv.Itoa(version))
	if err != nil {
		return SubjectSchema{}, err
	}
	return fromVersioned(found), nil
}

func (r *Registry) LatestSchema(ctx context.Context, subject string) (SubjectSchema, error) {
	found, err := r.service.Version(ctx, subject, domain.LatestVersion().String())
	if err != nil {
		return SubjectSchema{}, err
	}
	return fromVersioned(found), nil
}

func (r *Registry) Versions(ctx context.Context, subject string) ([]int, error) {
	return r.service.Versions(ctx, subject)
}

func (r *Registry) Subjects(ctx context.Context) ([]string, error) {
	return r.service.Subjects(ctx)
}

func (r *Registry) Lookup(ctx context.Context, subject string, schema Schema) (SubjectSchema, error) {
	found, err := r.service.Lookup(ctx, subject, toRequest(schema))
	if err != nil {
		return SubjectSchema{}, err
	}
	return fromVersioned(found), nil
}

func (r *Registry) DeleteSubject(ctx context.Context, subject string) ([]int, error) {
	return r.service.DeleteSubject(ctx, subject)
}

func (r *Registry) Usages(ctx context.Context, id int) ([]Usage, error) {
	usages, err := r.service.Usages(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]Usage, 0, len(usages))
	for _, usage := range usages {
		out = append(out, Usage{Subject: usage.Subject, Version: usage.Version})
	}
	return out, nil
}

func (r *Registry) Types() []SchemaType {
	types := r.service.Types()
	out := make([]SchemaType, 0, len(types))
	for _, t := range types {
		out = append(out, SchemaType(t))
	}
	return out
}

// Compatibility returns the subject's level, falling back to the global one.
// An empty subject reads the global level.
func (r *Registry) Compatibility(ctx context.Context, subject string) (CompatibilityLevel, error) {
	if subject == "" {
		level, err := r.service.GlobalCompatibility(ctx)
		return CompatibilityLevel(level), err
	}
	level, err := r.service.SubjectCompatibility(ctx, subject, true)
	return CompatibilityLevel(level), err
}

// SetCompatibility stores a level for subject, or the global level when
// subject is empty. Levels are reported back but never enforced.
func (r *Registry) SetCompatibility(ctx context.Context, subject string, level CompatibilityLevel) error {
	var err error
	if subject == "" {
		_, err = r.service.SetGlobalCompatibility(ctx, string(level))
	} else {
		_, err = r.service.SetSubjectCompatibility(ctx, subject, string(level))
	}
	return err
}

func toRequest(schema Schema) registry.SchemaRequest {
	req := registry.SchemaRequest{
		SchemaType: string(schema.Type),
		Schema:     schema.Schema,
	}
	for _, ref := range schema.References {
		req.References = append(req.References, registry.Reference{
			Name:    ref.Name,
			Subject: ref.Subject,
			Version: ref.Version,
		})
	}
	return req
}

func fromVersioned(v domain.VersionedSchema) SubjectSchema {
	return SubjectSchema{
		Subject: v.Subject,
		Version: v.Version,
		ID:      v.Schema.ID,
		Type:    SchemaType(v.Schema.Type),
		Schema:  v.Schema.Canonical,
	}
}
