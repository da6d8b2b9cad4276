package canonicaljson

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

var ErrEmptyDocument = errors.New("empty json document")

// Canonicalizer rewrites a JSON document into its RFC 8785 form: sorted
// object keys, no insignificant whitespace and normalized numbers.
type Canonicalizer struct{}

func (Canonicalizer) Canonicalize(ctx context.Context, input []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, ErrEmptyDocument
	}

	value := jsontext.Value(bytes.Clone(input))
	if err := value.Canonicalize(); err != nil {
		return nil, fmt.Errorf("canonicalize json: %w", err)
	}

	return []byte(value), nil
}

func (c Canonicalizer) CanonicalizeString(ctx context.Context, input string) (string, error) {
	out, err := c.Canonicalize(ctx, []byte(input))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
