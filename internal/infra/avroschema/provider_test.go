package avroschema

import (
	"context"
	"strings"
	"testing"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

const orderRecord = `{"type":"record","name":"Order","namespace":"shop","fields":[{"name":"id","type":"long"},{"name":"note","type":"string"}]}`

func TestParseRecord(t *testing.T) {
	parsed, err := (Provider{}).Parse(context.Background(), orderRecord)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed.Type() != domain.SchemaTypeAvro {
		t.Fatalf("unexpected type %s", parsed.Type())
	}
	if parsed.Canonical() == "" || parsed.Fingerprint() == "" {
		t.Fatalf("expected canonical text and fingerprint, got %+v", parsed)
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	spaced := "{\n  \"type\": \"record\",\n  \"name\": \"Order\",\n  \"namespace\": \"shop\",\n  \"fields\": [\n    {\"name\": \"id\", \"type\": \"long\"},\n    {\"name\": \"note\", \"type\": \"string\"}\n  ]\n}"

	first, err := (Provider{}).Parse(context.Background(), orderRecord)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := (Provider{}).Parse(context.Background(), spaced)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Fatalf("expected equal fingerprints:\n%s\n%s", first.Canonical(), second.Canonical())
	}
}

func TestParseIgnoresKeyOrder(t *testing.T) {
	reordered := `{"name":"Order","fields":[{"type":"long","name":"id"},{"type":"string","name":"note"}],"namespace":"shop","type":"record"}`

	first, err := (Provider{}).Parse(context.Background(), orderRecord)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := (Provider{}).Parse(context.Background(), reordered)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if first.Fingerprint() != second.Fingerprint() || first.Canonical() != second.Canonical() {
		t.Fatalf("expected equal canonical forms:\n%s\n%s", first.Canonical(), second.Canonical())
	}
}

func TestParseKeepsLogicalType(t *testing.T) {
	plain := `{"type":"record","name":"Event","fields":[{"name":"ts","type":"long"}]}`
	logical := `{"type":"record","name":"Event","fields":[{"name":"ts","type":{"type":"long","logicalType":"timestamp-millis"}}]}`

	first, err := (Provider{}).Parse(context.Background(), plain)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := (Provider{}).Parse(context.Background(), logical)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if first.Fingerprint() == second.Fingerprint() {
		t.Fatalf("long and timestamp-millis share fingerprint %s", first.Fingerprint())
	}
	if !strings.Contains(second.Canonical(), `"logicalType":"timestamp-millis"`) {
		t.Fatalf("canonical form lost logicalType: %s", second.Canonical())
	}
}

func TestParseDistinguishesContent(t *testing.T) {
	first, err := (Provider{}).Parse(context.Background(), `"string"`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := (Provider{}).Parse(context.Background(), `"long"`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if first.Fingerprint() == second.Fingerprint() {
		t.Fatalf("different schemas share fingerprint %s", first.Fingerprint())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, raw := range []string{
		`{"type":"record"`,
		`{"type":"nonsense"}`,
		`{"type":"enum","name":"E"}`,
		`{"type":"record","fields":[]}`,
		`   `,
	} {
		if _, err := (Provider{}).Parse(context.Background(), raw); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}
