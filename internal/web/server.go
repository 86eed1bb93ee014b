// SPDX-License-Identifier: MIT
// Package web: server lifecycle and routing.

package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstat/internal/config"
)

// Server is the lvstat HTTP API.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
}

// NewServer wires routes, middleware and a private Prometheus registry.
// A nil logger is replaced by zap.NewNop.
func NewServer(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: reg,
		metrics:  NewMetrics(reg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/regression", s.handleRegression)
	mux.HandleFunc("POST /api/distribution", s.handleDistribution)
	mux.HandleFunc("POST /api/matrix/inverse", s.handleInverse)
	mux.HandleFunc("POST /api/matrix/multiply", s.handleMultiply)
	mux.HandleFunc("POST /api/describe", s.handleDescribe)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	s.handler = s.instrument(s.recoverPanics(s.limitBody(mux)))

	return s
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Registry exposes the server's Prometheus registry.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.log),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web: listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web: listen: %w", err)
	}

	return nil
}
