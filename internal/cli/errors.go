package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"syscall"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/infra/sqliteexport"
	"github.com/osvaldoandrade/srmock/internal/platform"
	"github.com/osvaldoandrade/srmock/pkg/srmock"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
)

const (
	ExitInternal = 1
	ExitInvalid  = 2
	ExitNotFound = 3
	ExitConflict = 4
)

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, registry.ErrSubjectNotFound),
		errors.Is(err, registry.ErrVersionNotFound),
		errors.Is(err, registry.ErrSchemaNotFound),
		errors.Is(err, registry.ErrSchemaNotFoundForSubject):
		return ExitError{Code: ExitNotFound, Kind: KindNotFound, Err: err}
	case errors.Is(err, syscall.EADDRINUSE),
		errors.Is(err, srmock.ErrAlreadyStarted):
		return ExitError{Code: ExitConflict, Kind: KindConflict, Err: err}
	case errors.Is(err, platform.ErrInvalidLogLevel),
		errors.Is(err, platform.ErrInvalidLogFormat),
		errors.Is(err, registry.ErrInvalidCompatibilityLevel),
		errors.Is(err, registry.ErrInvalidSchema),
		errors.Is(err, registry.ErrUnsupportedSchemaType),
		errors.Is(err, registry.ErrSchemaRequired),
		errors.Is(err, registry.ErrSubjectRequired),
		errors.Is(err, registry.ErrReferencesUnsupported),
		errors.Is(err, registry.ErrInvalidVersion),
		errors.Is(err, sqliteexport.ErrPathRequired):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	prefix = ui.err(prefix)
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}
