package domain

import (
	"errors"
	"testing"
)

func TestParseSchemaType(t *testing.T) {
	tests := []struct {
		input   string
		want    SchemaType
		wantErr bool
	}{
		{input: "", want: SchemaTypeAvro},
		{input: "AVRO", want: SchemaTypeAvro},
		{input: "protobuf", want: SchemaTypeProtobuf},
		{input: " JSON ", want: SchemaTypeJSON},
		{input: "thrift", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSchemaType(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownSchemaType) {
				t.Fatalf("expected ErrUnknownSchemaType for %q, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %s, got %s for %q", tt.want, got, tt.input)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    VersionSelector
		wantErr bool
	}{
		{input: "latest", want: LatestVersion()},
		{input: "LATEST", want: LatestVersion()},
		{input: "-1", want: LatestVersion()},
		{input: "1", want: ExactVersion(1)},
		{input: "42", want: ExactVersion(42)},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "v1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidVersion) {
				t.Fatalf("expected ErrInvalidVersion for %q, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("expected %v, got %v for %q", tt.want, got, tt.input)
		}
	}
}

func TestParseCompatibilityLevel(t *testing.T) {
	got, err := ParseCompatibilityLevel("full_transitive")
	if err != nil {
		t.Fatalf("ParseCompatibilityLevel returned error: %v", err)
	}
	if got != CompatibilityFullTransitive {
		t.Fatalf("expected FULL_TRANSITIVE, got %s", got)
	}
	if _, err := ParseCompatibilityLevel("sideways"); !errors.Is(err, ErrInvalidCompatibilityLevel) {
		t.Fatalf("expected ErrInvalidCompatibilityLevel, got %v", err)
	}
	if NormalizeCompatibilityLevel("") != DefaultCompatibilityLevel {
		t.Fatalf("expected empty level to normalize to default")
	}
}

func TestSubjectNames(t *testing.T) {
	if KeySubject("orders") != "orders-key" {
		t.Fatalf("unexpected key subject %q", KeySubject("orders"))
	}
	if ValueSubject("orders") != "orders-value" {
		t.Fatalf("unexpected value subject %q", ValueSubject("orders"))
	}
	if IsValidSubjectName("  ") {
		t.Fatalf("blank subject must be invalid")
	}
	if !IsValidSubjectName("a/b?c") {
		t.Fatalf("subjects are opaque and must accept any non-blank name")
	}
}
