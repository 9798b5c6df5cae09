package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daytrack/daytrack/internal/config"
	"github.com/daytrack/daytrack/internal/database"
	"github.com/daytrack/daytrack/internal/handler"
	"github.com/daytrack/daytrack/internal/logger"
	"github.com/daytrack/daytrack/internal/middleware"
	"github.com/daytrack/daytrack/internal/repository"
	"github.com/daytrack/daytrack/internal/router"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/service"
)

// shutdownTimeout is how long inflight requests get to finish once a
// termination signal arrives.
const shutdownTimeout = 10 * time.Second

func main() {
	migrate := flag.Bool("migrate", false, "apply database schema migrations before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally on its own failures; this guards
		// against future variants that return instead.
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		bootstrapLog := logger.New(cfg, nil)
		bootstrapLog.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.New(cfg, loggerService)

	if *migrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Migrate(ctx, log, cfg); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("database migration failed")
		}
		cancel()
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, middlewares, handlers)
	srv.SetupHTTPServer(e)

	// Serve until interrupted.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}

		loggerService.Shutdown(5 * time.Second)
	}
}
