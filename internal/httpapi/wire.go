package httpapi

import (
	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
)

const ContentType = "application/vnd.schemaregistry.v1+json"

type schemaRequest struct {
	Schema     string             `json:"schema"`
	SchemaType string             `json:"schemaType,omitempty"`
	References []referenceRequest `json:"references,omitempty"`
}

type referenceRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Version int    `json:"version"`
}

func (r schemaRequest) toApp() registry.SchemaRequest {
	req := registry.SchemaRequest{
		SchemaType: r.SchemaType,
		Schema:     r.Schema,
	}
	for _, ref := range r.References {
		req.References = append(req.References, registry.Reference{
			Name:    ref.Name,
			Subject: ref.Subject,
			Version: ref.Version,
		})
	}
	return req
}

type idResponse struct {
	ID int `json:"id"`
}

type schemaResponse struct {
	Schema     string `json:"schema"`
	SchemaType string `json:"schemaType,omitempty"`
}

type versionResponse struct {
	Subject    string `json:"subject"`
	ID         int    `json:"id"`
	Version    int    `json:"version"`
	Schema     string `json:"schema"`
	SchemaType string `json:"schemaType,omitempty"`
}

type usageResponse struct {
	Subject string `json:"subject"`
	Version int    `json:"version"`
}

type compatibilityLevelResponse struct {
	CompatibilityLevel string `json:"compatibilityLevel"`
}

type compatibilityRequest struct {
	Compatibility string `json:"compatibility"`
}

type errorResponse struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// wireType omits AVRO, which clients assume when schemaType is absent.
func wireType(t domain.SchemaType) string {
	if t == domain.SchemaTypeAvro {
		return ""
	}
	return t.String()
}

func newSchemaResponse(schema domain.Schema) schemaResponse {
	return schemaResponse{
		Schema:     schema.Canonical,
		SchemaType: wireType(schema.Type),
	}
}

func newVersionResponse(v domain.VersionedSchema) versionResponse {
	return versionResponse{
		Subject:    v.Subject,
		ID:         v.Schema.ID,
		Version:    v.Version,
		Schema:     v.Schema.Canonical,
		SchemaType: wireType(v.Schema.Type),
	}
}
