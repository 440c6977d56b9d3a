// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz             liveness and version
//	GET  /dialects            supported dialects
//	POST /render              JSON request, JSON response
//	POST /render/{dialect}    JSON request, diagram text response
//	POST /legend              JSON request, markdown response
//	POST /svg?layout=dot      DOT body, SVG response
//
// Every response carries an X-Request-ID header.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/modchart/pkg/pipeline"
)

// Config configures the server.
type Config struct {
	Addr    string // Address to listen on (default ":8080")
	Version string

	// MaxBodyBytes limits request bodies (default 4 MiB).
	MaxBodyBytes int64
}

// Server is the HTTP render service.
type Server struct {
	config Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server that renders with runner.
// A nil logger discards log output.
func New(runner *pipeline.Runner, config Config, logger *log.Logger) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.MaxBodyBytes == 0 {
		config.MaxBodyBytes = 4 << 20
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	s := &Server{
		config: config,
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/dialects", s.handleDialects)
	r.Group(func(r chi.Router) {
		r.Use(s.limitBody)
		r.Post("/render", s.handleRender)
		r.Post("/render/{dialect}", s.handleRenderText)
		r.Post("/legend", s.handleLegend)
		r.Post("/svg", s.handleSVG)
	})
	return r
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
