// Package database contains the logic for establishing
// connections to the PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool) bounded by config
//   - wiring query tracing/logging (pgx tracelog)
//   - optional New Relic instrumentation (nrpgx5)
//
// The startup connectivity probe is advisory: a failed ping is logged
// and the process keeps serving, because pgxpool establishes
// connections lazily and the store may come up later.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/daytrack/daytrack/internal/config"
	loggerPkg "github.com/daytrack/daytrack/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger for lifecycle logs.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// multiTracer chains multiple pgx tracers behind the single Tracer slot
// in ConnConfig, so New Relic tracing and local SQL logging can coexist.
//
// It uses runtime interface checks, since tracer implementations opt
// into TraceQueryStart/TraceQueryEnd independently.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart calls every chained tracer that implements it,
// threading the context through so tracers can stash values for
// TraceQueryEnd.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd calls every chained tracer that implements it.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the number of seconds the startup probe waits
// before declaring the store unreachable.
const DatabasePingTimeout = 10

// buildDSN assembles the postgres connection string from config.
// The password is URL-escaped so special characters cannot break the URL.
func buildDSN(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// New creates the PostgreSQL connection pool with instrumentation.
//
// Behavior:
//   - Build DSN and parse it into a pgxpool config
//   - Bound the pool at cfg.Database.MaxConns
//   - Attach the New Relic tracer when APM is enabled
//   - In local env, attach the SQL tracelogger (chained if both exist)
//   - Create the pool and probe connectivity, logging the outcome
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxConns)

	if loggerService != nil && loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// Per-query SQL logging is noisy; only local gets it.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerPkg.NewPgxLogger(globalLevel)

		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerPkg.GetPgxTraceLogLevel(globalLevel),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	// Startup connectivity probe. Failure is logged, never fatal:
	// requests will still be attempted against the lazy pool.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("database connectivity probe failed, continuing anyway")
	} else {
		logger.Info().Msg("connected to the database")
	}

	return database, nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
