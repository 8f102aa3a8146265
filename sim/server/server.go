// Package server exposes the simulator over HTTP: submit a workload, get the report back.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBodyBytes caps the size of a submitted workload.
	DefaultMaxBodyBytes = 1 << 20
	// DefaultMaxRunFor caps the run length of a submitted workload in ticks.
	DefaultMaxRunFor = 1_000_000
)

// Server is the schedsim REST API server.
type Server struct {
	router       chi.Router
	logger       *logrus.Entry
	startTime    time.Time
	maxBodyBytes int64
	maxRunFor    int64
}

// Option configures optional Server settings.
type Option func(*Server)

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// WithMaxRunFor overrides DefaultMaxRunFor.
func WithMaxRunFor(ticks int64) Option {
	return func(s *Server) {
		s.maxRunFor = ticks
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Server) {
		s.logger = logrus.NewEntry(logger)
	}
}

// New creates a Server with all routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		logger:       logrus.NewEntry(logrus.StandardLogger()),
		startTime:    time.Now(),
		maxBodyBytes: DefaultMaxBodyBytes,
		maxRunFor:    DefaultMaxRunFor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "server")
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/schedulers", s.handleListSchedulers)
		r.Post("/simulate", s.handleSimulate)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
