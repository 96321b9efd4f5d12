// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the ISO 639 HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations (postgres source only).
//  4. Load the ISO 639-3 tables and build the registry.
//  5. Connect to Redis (optional, enables usage statistics).
//  6. Load the token verifier (optional, enables operator routes).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/data/migrations"
	"github.com/taibuivan/iso639/internal/api"
	"github.com/taibuivan/iso639/internal/core/language"
	"github.com/taibuivan/iso639/internal/platform/apperr"
	"github.com/taibuivan/iso639/internal/platform/config"
	"github.com/taibuivan/iso639/internal/platform/constants"
	"github.com/taibuivan/iso639/internal/platform/middleware"
	"github.com/taibuivan/iso639/internal/platform/migration"
	pgstore "github.com/taibuivan/iso639/internal/platform/postgres"
	redisstore "github.com/taibuivan/iso639/internal/platform/redis"
	"github.com/taibuivan/iso639/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("dataset_source", cfg.DatasetSource),
	)

	// Root context for startup. A deadline catches misconfiguration quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.DatasetLoadTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, migrationFS(cfg), log), "run migrations")
	}

	// ── 4. Dataset ────────────────────────────────────────────────────────
	registry, err := language.Load(startupCtx, datasetSource(cfg, pool))
	must(log, err, "load iso 639-3 dataset")

	// ── 5. Redis ──────────────────────────────────────────────────────────
	var (
		rdb   *redis.Client
		stats language.StatsRepository
	)
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		stats = language.NewRedisStatsRepository(rdb)
	} else {
		log.Info("usage_statistics_disabled")
	}

	// ── 6. Token Verifier ─────────────────────────────────────────────────
	var verifier middleware.TokenVerifier
	if cfg.JWTPubKeyPath != "" {
		tokenService, err := sec.LoadVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "initialize jwt verifier")
		verifier = tokenService
	} else {
		log.Info("operator_routes_disabled")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	deps := api.HealthDependencies{
		CheckDataset: func(context.Context) error {
			if registry.Len() == 0 {
				return errors.New("dataset is empty")
			}
			return nil
		},
	}
	if pool != nil {
		deps.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}
	if rdb != nil {
		deps.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(deps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	languageService := language.NewService(registry, stats, log)
	languageService.ReportCollisions()
	languageHandler := language.NewHandler(languageService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Language:  languageHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// datasetSource picks the table reader named by DATASET_SOURCE.
func datasetSource(cfg *config.Config, pool *pgxpool.Pool) language.Source {
	switch cfg.DatasetSource {
	case config.SourceDir:
		return language.NewFileSource(os.DirFS(cfg.DatasetDir))
	case config.SourcePostgres:
		return language.NewPostgresSource(pool)
	default:
		return language.NewFileSource(iso639.FS)
	}
}

// migrationFS prefers MIGRATION_PATH over the migrations compiled into the binary.
func migrationFS(cfg *config.Config) fs.FS {
	if cfg.MigrationPath != "" {
		return os.DirFS(cfg.MigrationPath)
	}
	return migrations.FS
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		attrs := []any{
			slog.String("context", context),
			slog.Any("error", err),
		}
		// AppError hides its cause from Error(); startup logs need it.
		if appErr := apperr.As(err); appErr != nil && appErr.Cause != nil {
			attrs = append(attrs, slog.Any("cause", appErr.Cause))
		}
		log.Error("startup failure", attrs...)
		os.Exit(1)
	}
}
