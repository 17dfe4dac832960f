// Package server hosts the interactive dashboard: forecast charts driven by
// the horizon control, the ranked accuracy table, and a small JSON API over
// the same data.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	visitorcast "github.com/visitorcast/visitorcast"
	"github.com/visitorcast/visitorcast/internal/config"
)

// Server serves the dashboard for one evaluated series. The session and
// report are fitted/computed before construction and are read-only here.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *visitorcast.Session
	report  *visitorcast.Report

	httpServer *http.Server
}

// New wires the handlers around an already-evaluated benchmark.
func New(cfg *config.Config, logger *zap.Logger, session *visitorcast.Session, report *visitorcast.Report) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		session: session,
		report:  report,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("dashboard listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
