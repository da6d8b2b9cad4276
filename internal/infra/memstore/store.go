package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
)

type contentKey struct {
	schemaType  domain.SchemaType
	fingerprint string
}

type subjectState struct {
	versions []domain.SubjectVersion
}

func (s *subjectState) find(schemaID int) (domain.SubjectVersion, bool) {
	for _, version := range s.versions {
		if version.SchemaID == schemaID {
			return version, true
		}
	}
	return domain.SubjectVersion{}, false
}

func (s *subjectState) latest() domain.SubjectVersion {
	return s.versions[len(s.versions)-1]
}

// Store keeps every registry structure behind one RWMutex. Schemas are never
// removed, so ids stay resolvable after the subjects using them are deleted.
type Store struct {
	mu            sync.RWMutex
	lastID        int
	schemas       map[int]domain.Schema
	byContent     map[contentKey]int
	subjects      map[string]*subjectState
	subjectOrder  []string
	global        domain.CompatibilityLevel
	subjectLevels map[string]domain.CompatibilityLevel
}

type Options struct {
	Compatibility domain.CompatibilityLevel
}

func New() *Store {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Store {
	return &Store{
		schemas:       make(map[int]domain.Schema),
		byContent:     make(map[contentKey]int),
		subjects:      make(map[string]*subjectState),
		global:        domain.NormalizeCompatibilityLevel(opts.Compatibility),
		subjectLevels: make(map[string]domain.CompatibilityLevel),
	}
}

func (s *Store) Register(ctx context.Context, subject string, schema domain.Schema) (registry.RegisterResult, error) {
	if err := ctx.Err(); err != nil {
		return registry.RegisterResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := contentKey{schemaType: schema.Type, fingerprint: schema.Fingerprint}
	id, known := s.byContent[key]

	state, exists := s.subjects[subject]
	if known && exists {
		if version, ok := state.find(id); ok {
			return registry.RegisterResult{ID: id, Version: version.Version}, nil
		}
	}

	if !known {
		s.lastID++
		id = s.lastID
		schema.ID = id
		s.schemas[id] = schema
		s.byContent[key] = id
	}

	if !exists {
		state = &subjectState{}
		s.subjects[subject] = state
		s.subjectOrder = append(s.subjectOrder, subject)
	}

	next := 1
	if len(state.versions) > 0 {
		next = state.latest().Version + 1
	}
	state.versions = append(state.versions, domain.SubjectVersion{
		Subject:  subject,
		Version:  next,
		SchemaID: id,
	})

	return registry.RegisterResult{ID: id, Version: next, Created: true}, nil
}

func (s *Store) SchemaByID(ctx context.Context, id int) (domain.Schema, error) {
	if err := ctx.Err(); err != nil {
		return domain.Schema{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.schemas[id]
	if !ok {
		return domain.Schema{}, fmt.Errorf("%w: id %d", registry.ErrSchemaNotFound, id)
	}
	return schema, nil
}

func (s *Store) Version(ctx context.Context, subject string, selector domain.VersionSelector) (domain.VersionedSchema, error) {
	if err := ctx.Err(); err != nil {
		return domain.VersionedSchema{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.subjects[subject]
	if !ok {
		return domain.VersionedSchema{}, fmt.Errorf("%w: %s", registry.ErrSubjectNotFound, subject)
	}

	if selector.Latest {
		return s.joinLocked(state.latest()), nil
	}
	for _, version := range state.versions {
		if version.Version == selector.Number {
			return s.joinLocked(version), nil
		}
	}
	return domain.VersionedSchema{}, fmt.Errorf("%w: %s version %d", registry.ErrVersionNotFound, subject, selector.Number)
}

func (s *Store) Versions(ctx context.Context, subject string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.subjects[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrSubjectNotFound, subject)
	}
	return versionNumbers(state.versions), nil
}

func (s *Store) Subjects(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.subjectOrder), nil
}

func (s *Store) Lookup(ctx context.Context, subject string, schema domain.Schema) (domain.VersionedSchema, error) {
	if err := ctx.Err(); err != nil {
		return domain.VersionedSchema{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.subjects[subject]
	if !ok {
		return domain.VersionedSchema{}, fmt.Errorf("%w: %s", registry.ErrSubjectNotFound, subject)
	}
	id, known := s.byContent[contentKey{schemaType: schema.Type, fingerprint: schema.Fingerprint}]
	if known {
		if version, found := state.find(id); found {
			return s.joinLocked(version), nil
		}
	}
	return domain.VersionedSchema{}, fmt.Errorf("%w: %s", registry.ErrSchemaNotFoundForSubject, subject)
}

func (s *Store) DeleteSubject(ctx context.Context, subject string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.subjects[subject]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrSubjectNotFound, subject)
	}
	delete(s.subjects, subject)
	s.subjectOrder = slices.DeleteFunc(s.subjectOrder, func(name string) bool {
		return name == subject
	})
	return versionNumbers(state.versions), nil
}

func (s *Store) UsagesByID(ctx context.Context, id int) ([]domain.SubjectVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.schemas[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", registry.ErrSchemaNotFound, id)
	}
	usages := []domain.SubjectVersion{}
	for _, name := range s.subjectOrder {
		for _, version := range s.subjects[name].versions {
			if version.SchemaID == id {
				usages = append(usages, version)
			}
		}
	}
	return usages, nil
}

func (s *Store) GlobalCompatibility(ctx context.Context) (domain.CompatibilityLevel, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.global, nil
}

func (s *Store) SetGlobalCompatibility(ctx context.Context, level domain.CompatibilityLevel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = level
	return nil
}

func (s *Store) SubjectCompatibility(ctx context.Context, subject string) (domain.CompatibilityLevel, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	level, ok := s.subjectLevels[subject]
	return level, ok, nil
}

func (s *Store) SetSubjectCompatibility(ctx context.Context, subject string, level domain.CompatibilityLevel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subjectLevels[subject] = level
	return nil
}

func (s *Store) DeleteSubjectCompatibility(ctx context.Context, subject string) (domain.CompatibilityLevel, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	level, ok := s.subjectLevels[subject]
	if !ok {
		return "", fmt.Errorf("%w: %s", registry.ErrSubjectCompatibilityNotFound, subject)
	}
	delete(s.subjectLevels, subject)
	return level, nil
}

// Snapshot copies the whole state under one read lock.
func (s *Store) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := domain.Snapshot{
		Schemas:       make([]domain.Schema, 0, len(s.schemas)),
		Global:        s.global,
		SubjectLevels: make(map[string]domain.CompatibilityLevel, len(s.subjectLevels)),
	}
	for id := 1; id <= s.lastID; id++ {
		if schema, ok := s.schemas[id]; ok {
			snapshot.Schemas = append(snapshot.Schemas, schema)
		}
	}
	for _, name := range s.subjectOrder {
		snapshot.Versions = append(snapshot.Versions, s.subjects[name].versions...)
	}
	for subject, level := range s.subjectLevels {
		snapshot.SubjectLevels[subject] = level
	}
	return snapshot, nil
}

func (s *Store) joinLocked(version domain.SubjectVersion) domain.VersionedSchema {
	return domain.VersionedSchema{
		Subject: version.Subject,
		Version: version.Version,
		Schema:  s.schemas[version.SchemaID],
	}
}

func versionNumbers(versions []domain.SubjectVersion) []int {
	numbers := make([]int, len(versions))
	for i, version := range versions {
		numbers[i] = version.Version
	}
	return numbers
}
