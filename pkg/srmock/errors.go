package srmock

import (
	"errors"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
)

var (
	ErrAlreadyStarted = errors.New("srmock: registry already started")
	ErrNotStarted     = errors.New("srmock: registry not started")
	ErrClosed         = errors.New("srmock: registry closed")
)

var (
	ErrSubjectRequired              = registry.ErrSubjectRequired
	ErrSubjectNotFound              = registry.ErrSubjectNotFound
	ErrVersionNotFound              = registry.ErrVersionNotFound
	ErrSchemaNotFound               = registry.ErrSchemaNotFound
	ErrSchemaNotFoundForSubject     = registry.ErrSchemaNotFoundForSubject
	ErrSchemaRequired               = registry.ErrSchemaRequired
	ErrInvalidSchema                = registry.ErrInvalidSchema
	ErrUnsupportedSchemaType        = registry.ErrUnsupportedSchemaType
	ErrReferencesUnsupported        = registry.ErrReferencesUnsupported
	ErrInvalidVersion               = registry.ErrInvalidVersion
	ErrInvalidCompatibilityLevel    = registry.ErrInvalidCompatibilityLevel
	ErrSubjectCompatibilityNotFound = registry.ErrSubjectCompatibilityNotFound
)
