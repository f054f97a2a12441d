// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Aqar HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Seed the translation dictionary and replay persisted additions.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/aqar/internal/api"
	"github.com/taibuivan/aqar/internal/core/availability"
	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/internal/core/project"
	"github.com/taibuivan/aqar/internal/platform/config"
	"github.com/taibuivan/aqar/internal/platform/logger"
	"github.com/taibuivan/aqar/internal/platform/constants"
	"github.com/taibuivan/aqar/internal/platform/migration"
	pgstore "github.com/taibuivan/aqar/internal/platform/postgres"
	redisstore "github.com/taibuivan/aqar/internal/platform/redis"
	"github.com/taibuivan/aqar/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := logger.New(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Aqar] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = logger.New(os.Stdout, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("default_locale", cfg.DefaultLocale),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Translation Dictionary ─────────────────────────────────────────
	seed, err := localization.DefaultCatalogue()
	must(log, err, "load built-in catalogue")

	if cfg.DictionarySeedPath != "" {
		extra, err := localization.LoadCatalogueFile(cfg.DictionarySeedPath)
		must(log, err, "load dictionary seed file")
		seed = append(seed, extra...)
	}

	dictionary := localization.NewDictionary(seed...)
	translationService := localization.NewService(localization.NewRedisRepository(rdb), dictionary, log)

	_, err = translationService.Restore(startupCtx)
	must(log, err, "restore dictionary additions")

	resolver := localization.NewResolver(dictionary)

	// ── 7. Auth ───────────────────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token verifier")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
		DictionarySize: dictionary.Len,
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	reconciler, err := availability.NewDefaultReconciler()
	must(log, err, "validate availability mappings")

	availabilityService := availability.NewService(availability.NewPostgresRepository(pool), reconciler, resolver, log)
	projectService := project.NewService(project.NewPostgresRepository(pool), resolver, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Availability: availability.NewHandler(availabilityService),
		Translations: localization.NewHandler(translationService),
		Projects:     project.NewHandler(projectService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
