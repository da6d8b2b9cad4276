package srmock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
	"github.com/osvaldoandrade/srmock/internal/httpapi"
	"github.com/osvaldoandrade/srmock/internal/infra/filesystem"
	"github.com/osvaldoandrade/srmock/internal/infra/format"
	"github.com/osvaldoandrade/srmock/internal/infra/ident"
	"github.com/osvaldoandrade/srmock/internal/infra/memstore"
	"github.com/osvaldoandrade/srmock/internal/infra/sqliteexport"
	"github.com/osvaldoandrade/srmock/internal/platform"
)

const shutdownTimeout = 5 * time.Second

// Registry is one emulator instance: its own store, its own HTTP listener.
// State survives Restart and is discarded when the Registry is dropped.
type Registry struct {
	cfg     Config
	id      string
	logger  *slog.Logger
	store   *memstore.Store
	service *registry.Service
	handler *httpapi.Handler

	mu     sync.Mutex
	server *http.Server
	addr   string
	bound  bool
	done   chan error
	closed bool
}

// New builds a registry and loads the seed directory, if any. Nothing listens
// until Start.
func New(cfg Config) (*Registry, error) {
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	id, err := ident.NewInstanceID()
	if err != nil {
		return nil, err
	}
	logger := normalized.Logger
	if logger == nil {
		logger = platform.DiscardLogger()
	}
	logger = logger.With(slog.String("instance", id))

	store := memstore.NewWithOptions(memstore.Options{
		Compatibility: domain.CompatibilityLevel(normalized.Compatibility),
	})
	service := registry.NewService(store, format.Builtin())

	r := &Registry{
		cfg:     normalized,
		id:      id,
		logger:  logger,
		store:   store,
		service: service,
		handler: httpapi.New(service, httpapi.Options{Logger: logger, InstanceID: id}),
		addr:    normalized.Addr,
	}

	if normalized.SeedDir != "" {
		if _, err := r.Seed(context.Background(), normalized.SeedDir); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ID is the ULID tagging this instance in logs and response headers.
func (r *Registry) ID() string {
	return r.id
}

// Handler exposes the router for callers that run their own server, such as
// httptest.NewServer.
func (r *Registry) Handler() http.Handler {
	return r.handler
}

// Start binds the configured address and serves in the background.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.server != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", r.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.addr, err)
	}
	// Pin the resolved port so Restart comes back on the same URL.
	r.addr = listener.Addr().String()
	r.bound = true

	server := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(r.logger.Handler(), slog.LevelError),
	}
	done := make(chan error, 1)
	go func() {
		err := server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
		close(done)
	}()

	r.server = server
	r.done = done
	r.logger.Info("schema registry listening", "url", "http://"+r.addr)
	return nil
}

// URL is the base URL clients should use. It is empty before the first Start.
func (r *Registry) URL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.bound {
		return ""
	}
	return "http://" + r.addr
}

// Stop shuts the listener down and keeps all registry state.
func (r *Registry) Stop(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	done := r.done
	r.server = nil
	r.done = nil
	r.mu.Unlock()

	if server == nil {
		return ErrNotStarted
	}
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-done; err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	r.logger.Info("schema registry stopped")
	return nil
}

// Restart stops and starts the listener on the same address, keeping state.
func (r *Registry) Restart(ctx context.Context) error {
	if err := r.Stop(ctx); err != nil && !errors.Is(err, ErrNotStarted) {
		return err
	}
	return r.Start(ctx)
}

// Serve starts the registry and blocks until ctx is canceled or the listener
// fails, then closes it.
func (r *Registry) Serve(ctx context.Context) error {
	if err := r.Start(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return r.Close()
	case err := <-done:
		r.mu.Lock()
		r.server = nil
		r.done = nil
		r.mu.Unlock()
		closeErr := r.Close()
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return closeErr
	}
}

// Close stops the listener if running and writes the SQLite export when
// Config.ExportPath is set. It is safe to call more than once.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	running := r.server != nil
	r.mu.Unlock()

	var errs []error
	if running {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if r.cfg.ExportPath != "" {
		if err := r.ExportSQLite(context.Background(), r.cfg.ExportPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Seed registers every schema file in dir and returns how many were loaded.
func (r *Registry) Seed(ctx context.Context, dir string) (int, error) {
	seeds, err := (filesystem.SeedSource{}).Load(ctx, dir)
	if err != nil {
		return 0, err
	}
	for _, seed := range seeds {
		result, err := r.service.Register(ctx, seed.Subject, registry.SchemaRequest{
			SchemaType: seed.SchemaType.String(),
			Schema:     seed.Schema,
		})
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", seed.Path, err)
		}
		r.logger.Debug("seeded schema",
			"subject", seed.Subject,
			"id", result.ID,
			"version", result.Version,
		)
	}
	return len(seeds), nil
}

// ExportSQLite writes a snapshot of the current state to path for offline
// inspection. The file is never read back.
func (r *Registry) ExportSQLite(ctx context.Context, path string) error {
	snapshot, err := r.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	export, err := sqliteexport.Open(path)
	if err != nil {
		return err
	}
	defer export.Close()

	if err := export.Write(ctx, snapshot, sqliteexport.Meta{
		InstanceID: r.id,
		ExportedAt: time.Now(),
	}); err != nil {
		return err
	}
	r.logger.Info("state exported", "path", path, "schemas", len(snapshot.Schemas), "versions", len(snapshot.Versions))
	return nil
}
