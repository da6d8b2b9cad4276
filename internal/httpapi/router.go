// Package httpapi serves the schema registry REST protocol over a registry
// service.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/platform"
)

const InstanceHeader = "X-Registry-Instance"

type Options struct {
	Logger     *slog.Logger
	InstanceID string
}

// Handler routes registry requests. It is safe for concurrent use; all
// shared state lives behind the service.
type Handler struct {
	service  *registry.Service
	logger   *slog.Logger
	instance string
	mux      *http.ServeMux
}

func New(service *registry.Service, opts Options) *Handler {
	h := &Handler{
		service:  service,
		logger:   platform.Component(opts.Logger, "httpapi"),
		instance: opts.InstanceID,
		mux:      http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /{$}", h.root)

	h.mux.HandleFunc("GET /subjects", h.listSubjects)
	h.mux.HandleFunc("POST /subjects/{subject}", h.lookup)
	h.mux.HandleFunc("DELETE /subjects/{subject}", h.deleteSubject)
	h.mux.HandleFunc("GET /subjects/{subject}/versions", h.listVersions)
	h.mux.HandleFunc("POST /subjects/{subject}/versions", h.register)
	h.mux.HandleFunc("GET /subjects/{subject}/versions/{version}", h.getVersion)
	h.mux.HandleFunc("GET /subjects/{subject}/versions/{version}/schema", h.getVersionSchema)

	h.mux.HandleFunc("GET /schemas/types", h.types)
	h.mux.HandleFunc("GET /schemas/ids/{id}", h.getSchema)
	h.mux.HandleFunc("GET /schemas/ids/{id}/versions", h.schemaVersions)
	h.mux.HandleFunc("GET /schemas/ids/{id}/subjects", h.schemaSubjects)

	h.mux.HandleFunc("GET /config", h.getGlobalConfig)
	h.mux.HandleFunc("PUT /config", h.putGlobalConfig)
	h.mux.HandleFunc("GET /config/{subject}", h.getSubjectConfig)
	h.mux.HandleFunc("PUT /config/{subject}", h.putSubjectConfig)
	h.mux.HandleFunc("DELETE /config/{subject}", h.deleteSubjectConfig)

	h.mux.HandleFunc("/", h.notFound)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	if h.instance != "" {
		rec.Header().Set(InstanceHeader, h.instance)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err := fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, recovered)
			if rec.wrote {
				h.logger.Error("request panicked after response started", "error", err)
			} else {
				h.writeError(rec, r, err)
			}
		}
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	}()

	h.mux.ServeHTTP(rec, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if !r.wrote {
		r.wrote = true
	}
	return r.ResponseWriter.Write(p)
}

// ---------- helpers ----------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := NormalizeError(err)
	if apiErr.Internal() {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, apiErr.Status, errorResponse{
		ErrorCode: apiErr.Code,
		Message:   apiErr.Error(),
	})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedRequest)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "schema" {
			return fmt.Errorf("%w: schema must be a string, got %s", registry.ErrInvalidSchema, typeErr.Value)
		}
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	return nil
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
