package registry

import (
	"errors"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

var ErrSubjectRequired = errors.New("subject is required")
var ErrSubjectNotFound = errors.New("subject not found")
var ErrVersionNotFound = errors.New("version not found")
var ErrSchemaNotFound = errors.New("schema not found")
var ErrSchemaNotFoundForSubject = errors.New("schema not found under subject")
var ErrSchemaRequired = errors.New("schema is required")
var ErrInvalidSchema = errors.New("invalid schema")
var ErrReferencesUnsupported = errors.New("schema references are not supported")
var ErrSubjectCompatibilityNotFound = errors.New("subject compatibility level not configured")

var ErrUnsupportedSchemaType = domain.ErrUnknownSchemaType
var ErrInvalidVersion = domain.ErrInvalidVersion
var ErrInvalidCompatibilityLevel = domain.ErrInvalidCompatibilityLevel
