// Package server exposes the savings calculator over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/inboxsavings/savings-calculator/internal/calculation"
	"github.com/inboxsavings/savings-calculator/internal/config"
	"go.uber.org/zap"
)

// Server is the HTTP API with graceful shutdown.
type Server struct {
	cfg  *config.ServerConfig
	log  *zap.Logger
	http *http.Server
}

// New builds a server around engine.
func New(cfg *config.ServerConfig, engine *calculation.CalculationEngine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	h := NewHandlers(engine, log)
	return &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           SetupRoutes(h, cfg.AllowedOrigins, log),
			ReadHeaderTimeout: cfg.ReadTimeout(),
			ReadTimeout:       cfg.ReadTimeout(),
		},
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
