package httpapi

import (
	"errors"
	"net/http"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
)

var ErrMalformedRequest = errors.New("malformed request body")
var ErrRouteNotFound = errors.New("HTTP 404 Not Found")

const (
	CodeSubjectNotFound       = 40401
	CodeVersionNotFound       = 40402
	CodeSchemaNotFound        = 40403
	CodeSubjectCompatNotFound = 40408
	CodeInvalidSchema         = 42201
	CodeInvalidVersion        = 42202
	CodeInvalidCompatibility  = 42203
	CodeBadRequest            = 40001
	CodeRouteNotFound         = 404
	CodeInternal              = 50001
)

// APIError is one translated failure: the status line and the envelope sent
// to the client.
type APIError struct {
	Status  int
	Code    int
	Message string
	Err     error
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e APIError) Unwrap() error {
	return e.Err
}

func (e APIError) Internal() bool {
	return e.Status >= http.StatusInternalServerError
}

func NormalizeError(err error) APIError {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, registry.ErrSubjectNotFound):
		return APIError{Status: http.StatusNotFound, Code: CodeSubjectNotFound, Err: err}
	case errors.Is(err, registry.ErrVersionNotFound):
		return APIError{Status: http.StatusNotFound, Code: CodeVersionNotFound, Err: err}
	case errors.Is(err, registry.ErrSchemaNotFound),
		errors.Is(err, registry.ErrSchemaNotFoundForSubject):
		return APIError{Status: http.StatusNotFound, Code: CodeSchemaNotFound, Err: err}
	case errors.Is(err, registry.ErrSubjectCompatibilityNotFound):
		return APIError{Status: http.StatusNotFound, Code: CodeSubjectCompatNotFound, Err: err}
	case errors.Is(err, ErrRouteNotFound):
		return APIError{Status: http.StatusNotFound, Code: CodeRouteNotFound, Err: err}
	case errors.Is(err, registry.ErrInvalidSchema),
		errors.Is(err, registry.ErrSchemaRequired),
		errors.Is(err, registry.ErrUnsupportedSchemaType),
		errors.Is(err, registry.ErrReferencesUnsupported):
		return APIError{Status: http.StatusUnprocessableEntity, Code: CodeInvalidSchema, Err: err}
	case errors.Is(err, registry.ErrInvalidVersion):
		return APIError{Status: http.StatusUnprocessableEntity, Code: CodeInvalidVersion, Err: err}
	case errors.Is(err, registry.ErrInvalidCompatibilityLevel):
		return APIError{Status: http.StatusUnprocessableEntity, Code: CodeInvalidCompatibility, Err: err}
	case errors.Is(err, registry.ErrSubjectRequired),
		errors.Is(err, ErrMalformedRequest):
		return APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Err: err}
	default:
		return APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Err: err}
	}
}
