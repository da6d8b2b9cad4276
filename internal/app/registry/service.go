package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

type Service struct {
	store  Store
	parser Parser
}

func NewService(store Store, parser Parser) *Service {
	return &Service{
		store:  store,
		parser: parser,
	}
}

// Register canonicalizes the payload and binds it to subject. Registering
// content the subject already holds returns the existing version.
func (s *Service) Register(ctx context.Context, subject string, req SchemaRequest) (RegisterResult, error) {
	if err := validateSubject(subject); err != nil {
		return RegisterResult{}, err
	}
	schema, err := s.parse(ctx, req)
	if err != nil {
		return RegisterResult{}, err
	}
	return s.store.Register(ctx, subject, schema)
}

// Lookup finds the version of subject holding the payload's content. It never
// registers anything.
func (s *Service) Lookup(ctx context.Context, subject string, req SchemaRequest) (domain.VersionedSchema, error) {
	if err := validateSubject(subject); err != nil {
		return domain.VersionedSchema{}, err
	}
	schema, err := s.parse(ctx, req)
	if err != nil {
		return domain.VersionedSchema{}, err
	}
	return s.store.Lookup(ctx, subject, schema)
}

func (s *Service) SchemaByID(ctx context.Context, id int) (domain.Schema, error) {
	if id < 1 {
		return domain.Schema{}, fmt.Errorf("%w: id %d", ErrSchemaNotFound, id)
	}
	return s.store.SchemaByID(ctx, id)
}

func (s *Service) Version(ctx context.Context, subject, version string) (domain.VersionedSchema, error) {
	if err := validateSubject(subject); err != nil {
		return domain.VersionedSchema{}, err
	}
	selector, err := domain.ParseVersion(version)
	if err != nil {
		return domain.VersionedSchema{}, err
	}
	return s.store.Version(ctx, subject, selector)
}

func (s *Service) Versions(ctx context.Context, subject string) ([]int, error) {
	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	return s.store.Versions(ctx, subject)
}

func (s *Service) Subjects(ctx context.Context) ([]string, error) {
	return s.store.Subjects(ctx)
}

func (s *Service) DeleteSubject(ctx context.Context, subject string) ([]int, error) {
	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	return s.store.DeleteSubject(ctx, subject)
}

// Usages lists the live subject versions bound to a schema id. An allocated
// id with no live version yields an empty slice.
func (s *Service) Usages(ctx context.Context, id int) ([]domain.SubjectVersion, error) {
	if _, err := s.SchemaByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.UsagesByID(ctx, id)
}

func (s *Service) Types() []domain.SchemaType {
	return s.parser.Types()
}

func (s *Service) GlobalCompatibility(ctx context.Context) (domain.CompatibilityLevel, error) {
	return s.store.GlobalCompatibility(ctx)
}

func (s *Service) SetGlobalCompatibility(ctx context.Context, level string) (domain.CompatibilityLevel, error) {
	parsed, err := domain.ParseCompatibilityLevel(level)
	if err != nil {
		return "", err
	}
	if err := s.store.SetGlobalCompatibility(ctx, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

// SubjectCompatibility returns the level configured for subject. When none is
// configured it falls back to the global level only if defaultToGlobal is set.
func (s *Service) SubjectCompatibility(ctx context.Context, subject string, defaultToGlobal bool) (domain.CompatibilityLevel, error) {
	if err := validateSubject(subject); err != nil {
		return "", err
	}
	level, ok, err := s.store.SubjectCompatibility(ctx, subject)
	if err != nil {
		return "", err
	}
	if ok {
		return level, nil
	}
	if !defaultToGlobal {
		return "", fmt.Errorf("%w: %s", ErrSubjectCompatibilityNotFound, subject)
	}
	return s.store.GlobalCompatibility(ctx)
}

func (s *Service) SetSubjectCompatibility(ctx context.Context, subject, level string) (domain.CompatibilityLevel, error) {
	if err := validateSubject(subject); err != nil {
		return "", err
	}
	parsed, err := domain.ParseCompatibilityLevel(level)
	if err != nil {
		return "", err
	}
	if err := s.store.SetSubjectCompatibility(ctx, subject, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

func (s *Service) DeleteSubjectCompatibility(ctx context.Context, subject string) (domain.CompatibilityLevel, error) {
	if err := validateSubject(subject); err != nil {
		return "", err
	}
	return s.store.DeleteSubjectCompatibility(ctx, subject)
}

func (s *Service) parse(ctx context.Context, req SchemaRequest) (domain.Schema, error) {
	if strings.TrimSpace(req.Schema) == "" {
		return domain.Schema{}, ErrSchemaRequired
	}
	if len(req.References) > 0 {
		return domain.Schema{}, ErrReferencesUnsupported
	}
	schemaType, err := domain.ParseSchemaType(req.SchemaType)
	if err != nil {
		return domain.Schema{}, err
	}
	parsed, err := s.parser.Parse(ctx, schemaType, req.Schema)
	if err != nil {
		return domain.Schema{}, err
	}
	return domain.Schema{
		Type:        parsed.Type(),
		Canonical:   parsed.Canonical(),
		Fingerprint: parsed.Fingerprint(),
	}, nil
}

func validateSubject(subject string) error {
	if !domain.IsValidSubjectName(subject) {
		return ErrSubjectRequired
	}
	return nil
}
