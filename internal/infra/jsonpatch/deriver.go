package jsonpatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/evanphx/json-patch/v5"

	"github.com/osvaldoandrade/srmock/internal/infra/canonicaljson"
)

var ErrEmptyPatch = errors.New("patch has no operations")

// Deriver produces an evolved schema by applying an RFC 6902 patch to a
// JSON-encoded base schema. The result is canonical JSON so it registers
// identically however the patch laid it out.
type Deriver struct {
	canonicalizer canonicaljson.Canonicalizer
}

func (d Deriver) Derive(ctx context.Context, base string, patch []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return "", fmt.Errorf("decode patch: %w", err)
	}
	if len(decoded) == 0 {
		return "", ErrEmptyPatch
	}

	out, err := decoded.Apply([]byte(base))
	if err != nil {
		return "", fmt.Errorf("apply patch: %w", err)
	}
	return d.canonicalizer.CanonicalizeString(ctx, string(out))
}
