/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: server.go
Description: HTTP API for Guesstimate. Routes guess requests to the engine behind
negroni recovery and request logging, and serves metrics and health checks.
*/

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/kleascm/guesstimate/pkg/engine"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// Config holds the listener settings
type Config struct {
	Addr         string        `json:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	MaxBodyBytes int64         `json:"max_body_bytes"`
}

// DefaultConfig returns the settings used for unset fields
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxBodyBytes: 8 << 20,
	}
}

const shutdownTimeout = 5 * time.Second

// Server serves the guessing API
type Server struct {
	config  Config
	engine  *engine.Engine
	logger  *logrus.Logger
	router  *mux.Router
	handler http.Handler
}

// NewServer creates a server around eng
func NewServer(config Config, eng *engine.Engine, logger *logrus.Logger) *Server {
	defaults := DefaultConfig()
	if config.Addr == "" {
		config.Addr = defaults.Addr
	}
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = defaults.ReadTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if logger == nil {
		logger = logrus.New()
	}

	s := &Server{
		config: config,
		engine: eng,
		logger: logger,
		router: mux.NewRouter().StrictSlash(true),
	}
	s.setupRoutes()

	recovery := negroni.NewRecovery()
	recovery.Logger = logger
	recovery.PrintStack = false

	n := negroni.New(recovery, negroni.HandlerFunc(s.logRequest))
	n.UseHandler(s.router)
	s.handler = n
	return s
}

// Handler returns the full middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.config.Addr).Info("🚀 Guesstimate API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "listen")
	}
	return nil
}

// logRequest logs each request with its status and latency
func (s *Server) logRequest(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, r)

	status := http.StatusOK
	if res, ok := rw.(negroni.ResponseWriter); ok {
		status = res.Status()
	}
	entry := s.logger.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"status":   status,
		"duration": time.Since(start),
	})
	if status >= http.StatusInternalServerError {
		entry.Warn("Request failed")
		return
	}
	entry.Debug("Request served")
}
