// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/daytrack/daytrack/internal/config"
	"github.com/daytrack/daytrack/internal/database"
	"github.com/rs/zerolog"

	loggerPkg "github.com/daytrack/daytrack/internal/logger"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; it holds one internally.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	// When APM is disabled it exists but carries a nil application.
	LoggerService *loggerPkg.LoggerService

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// httpServer is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server; that is SetupHTTPServer + Start.
// The database pool is created here, including the advisory startup
// connectivity probe (logged, never fatal).
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The router/middleware stack is passed in as handler. The timeouts
// protect against slow clients holding connections open indefinitely.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         "0.0.0.0:" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to have been
// called first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies:
// the HTTP server first (finishing inflight requests until the ctx
// deadline), then the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
