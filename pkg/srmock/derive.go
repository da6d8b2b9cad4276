package srmock

import (
	"context"

	"github.com/osvaldoandrade/srmock/internal/infra/jsonpatch"
)

// DeriveSchema applies an RFC 6902 JSON patch to a JSON-encoded schema (Avro
// or JSON Schema) and returns the result as canonical JSON. It is meant for
// building "version 2" of a fixture schema inside a test.
func DeriveSchema(base string, patch []byte) (string, error) {
	return (jsonpatch.Deriver{}).Derive(context.Background(), base, patch)
}
