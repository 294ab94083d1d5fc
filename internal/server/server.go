// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes FDO documents over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/mardi-fdo/internal/fdo"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

const (
	defaultAddr            = ":8000"
	defaultShutdownTimeout = 10 * time.Second
)

// Deps are the collaborators of a Server.
type Deps struct {
	Entities   EntitySource
	Translator *fdo.Translator
	Logger     *zap.Logger

	// Registry, when set, receives the HTTP metrics and is served on
	// /metrics.
	Registry *prometheus.Registry

	Version string
}

// Server is the HTTP front of the translator.
type Server struct {
	cfg     types.ServerConfig
	handler http.Handler
	logger  *zap.Logger
}

// New wires the routes and middleware.
func New(cfg types.ServerConfig, d Deps) (*Server, error) {
	if d.Entities == nil || d.Translator == nil {
		return nil, errors.New("server: entity source and translator are required")
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	NewFDOHandler(d.Entities, d.Translator, logger).RegisterRoutes(mux)
	NewPagesHandler(d.Version, cfg.StaticDir, logger).RegisterRoutes(mux)

	var handler http.Handler = mux
	if d.Registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
		m, err := newHTTPMetrics(d.Registry)
		if err != nil {
			return nil, fmt.Errorf("registering HTTP metrics: %w", err)
		}
		handler = m.instrument(handler)
	}
	handler = RequestLogger(logger)(handler)

	return &Server{cfg: cfg, handler: handler, logger: logger}, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
