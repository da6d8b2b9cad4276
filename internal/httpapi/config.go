package httpapi

import (
	"net/http"
	"strconv"
)

func (h *Handler) getGlobalConfig(w http.ResponseWriter, r *http.Request) {
	level, err := h.service.GlobalCompatibility(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compatibilityLevelResponse{CompatibilityLevel: level.String()})
}

func (h *Handler) putGlobalConfig(w http.ResponseWriter, r *http.Request) {
	var body compatibilityRequest
	if err := readJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	level, err := h.service.SetGlobalCompatibility(r.Context(), body.Compatibility)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compatibilityRequest{Compatibility: level.String()})
}

func (h *Handler) getSubjectConfig(w http.ResponseWriter, r *http.Request) {
	defaultToGlobal, _ := strconv.ParseBool(r.URL.Query().Get("defaultToGlobal"))
	level, err := h.service.SubjectCompatibility(r.Context(), r.PathValue("subject"), defaultToGlobal)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compatibilityLevelResponse{CompatibilityLevel: level.String()})
}

func (h *Handler) putSubjectConfig(w http.ResponseWriter, r *http.Request) {
	var body compatibilityRequest
	if err := readJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	level, err := h.service.SetSubjectCompatibility(r.Context(), r.PathValue("subject"), body.Compatibility)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compatibilityRequest{Compatibility: level.String()})
}

func (h *Handler) deleteSubjectConfig(w http.ResponseWriter, r *http.Request) {
	level, err := h.service.DeleteSubjectCompatibility(r.Context(), r.PathValue("subject"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compatibilityLevelResponse{CompatibilityLevel: level.String()})
}
