package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/platform"
	"github.com/osvaldoandrade/srmock/pkg/srmock"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantKind ErrorKind
	}{
		{err: registry.ErrSubjectNotFound, wantCode: ExitNotFound, wantKind: KindNotFound},
		{err: fmt.Errorf("read seed dir: %w", fs.ErrNotExist), wantCode: ExitNotFound, wantKind: KindNotFound},
		{err: fmt.Errorf("listen: %w", syscall.EADDRINUSE), wantCode: ExitConflict, wantKind: KindConflict},
		{err: srmock.ErrAlreadyStarted, wantCode: ExitConflict, wantKind: KindConflict},
		{err: platform.ErrInvalidLogLevel, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: platform.ErrInvalidLogFormat, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: registry.ErrInvalidCompatibilityLevel, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: fmt.Errorf("seed a.avsc: %w", registry.ErrInvalidSchema), wantCode: ExitInvalid, wantKind: KindValidation},
		{err: registry.ErrUnsupportedSchemaType, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: errors.New("boom"), wantCode: ExitInternal, wantKind: KindInternal},
	}

	for _, tt := range tests {
		got := NormalizeError(tt.err)
		if got.Code != tt.wantCode {
			t.Fatalf("expected code %d, got %d for %v", tt.wantCode, got.Code, tt.err)
		}
		if got.Kind != tt.wantKind {
			t.Fatalf("expected kind %s, got %s for %v", tt.wantKind, got.Kind, tt.err)
		}
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("expected ExitCode(nil) == 0")
	}

	custom := ExitError{Code: 9, Kind: KindInternal, Message: "custom"}
	if ExitCode(custom) != 9 {
		t.Fatalf("expected ExitCode(custom) == 9")
	}
}
