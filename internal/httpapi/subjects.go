package httpapi

import (
	"net/http"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body schemaRequest
	if err := readJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.service.Register(r.Context(), r.PathValue("subject"), body.toApp())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if result.Created {
		h.logger.Debug("schema registered",
			"subject", r.PathValue("subject"),
			"id", result.ID,
			"version", result.Version,
		)
	}
	writeJSON(w, http.StatusOK, idResponse{ID: result.ID})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	var body schemaRequest
	if err := readJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	found, err := h.service.Lookup(r.Context(), r.PathValue("subject"), body.toApp())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newVersionResponse(found))
}

func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.Subjects(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if subjects == nil {
		subjects = []string{}
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.service.Versions(r.Context(), r.PathValue("subject"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.Version(r.Context(), r.PathValue("subject"), r.PathValue("version"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newVersionResponse(found))
}

func (h *Handler) getVersionSchema(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.Version(r.Context(), r.PathValue("subject"), r.PathValue("version"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(found.Schema.Canonical))
}

func (h *Handler) deleteSubject(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	removed, err := h.service.DeleteSubject(r.Context(), subject)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Debug("subject deleted", "subject", subject, "versions", removed)
	writeJSON(w, http.StatusOK, removed)
}
