package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
)

func (h *Handler) getSchema(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	schema, err := h.service.SchemaByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSchemaResponse(schema))
}

func (h *Handler) schemaVersions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	usages, err := h.service.Usages(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]usageResponse, 0, len(usages))
	for _, usage := range usages {
		out = append(out, usageResponse{Subject: usage.Subject, Version: usage.Version})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) schemaSubjects(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	usages, err := h.service.Usages(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	subjects := make([]string, 0, len(usages))
	seen := make(map[string]bool, len(usages))
	for _, usage := range usages {
		if !seen[usage.Subject] {
			seen[usage.Subject] = true
			subjects = append(subjects, usage.Subject)
		}
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (h *Handler) types(w http.ResponseWriter, r *http.Request) {
	types := h.service.Types()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	writeJSON(w, http.StatusOK, out)
}

// pathID treats a non-numeric id as an unknown schema.
func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", registry.ErrSchemaNotFound, raw)
	}
	return id, nil
}
