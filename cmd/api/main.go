// Copyright (c) 2026 Scripta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Scripta harvesting API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the harvesting engine and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/scripta/internal/admin"
	"github.com/taibuivan/scripta/internal/api"
	"github.com/taibuivan/scripta/internal/audit"
	"github.com/taibuivan/scripta/internal/catalog/language"
	"github.com/taibuivan/scripta/internal/catalog/person"
	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/catalog/reference"
	"github.com/taibuivan/scripta/internal/catalog/tag"
	"github.com/taibuivan/scripta/internal/catalog/thesis"
	"github.com/taibuivan/scripta/internal/harvest"
	"github.com/taibuivan/scripta/internal/platform/config"
	"github.com/taibuivan/scripta/internal/platform/constants"
	"github.com/taibuivan/scripta/internal/platform/migration"
	pgstore "github.com/taibuivan/scripta/internal/platform/postgres"
	redisstore "github.com/taibuivan/scripta/internal/platform/redis"
	"github.com/taibuivan/scripta/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "scripta"))
	slog.SetDefault(log)

	log.Info("[Scripta] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "scripta"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// appCtx lives for the whole process and stops background routines
	// (rate limiter eviction) on shutdown. startupCtx bounds connection
	// attempts so misconfiguration fails fast instead of hanging.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Catalog Repositories ───────────────────────────────────────────
	languageRepository := language.NewPostgresRepository(pool)
	tagRepository := tag.NewPostgresRepository(pool)
	personRepository := person.NewPostgresRepository(pool)
	publicationRepository := publication.NewPostgresRepository(pool)
	thesisRepository := thesis.NewPostgresRepository(pool)
	auditRepository := audit.NewPostgresRepository(pool)

	// ── 9. Harvesting Engine ──────────────────────────────────────────────
	var modifiedCache harvest.ModifiedCache = harvest.NopModifiedCache{}
	if cfg.ModifiedCacheTTL > 0 {
		modifiedCache = harvest.NewRedisModifiedCache(rdb, cfg.ModifiedCacheTTL, log)
	}

	resolver := publication.NewResolver(publicationRepository)
	tracker := harvest.NewTracker(auditRepository, resolver, personRepository, tagRepository, thesisRepository, modifiedCache)
	synthesizer := harvest.NewSynthesizer(resolver, languageRepository, personRepository, tagRepository, thesisRepository)
	harvestService := harvest.NewService(publicationRepository, thesisRepository, tracker, synthesizer, log)
	harvestHandler := harvest.NewHandler(harvestService)

	// ── 10. Reference and Admin ───────────────────────────────────────────
	referenceService := reference.NewService(languageRepository, tagRepository, personRepository)
	referenceHandler := reference.NewHandler(referenceService)

	adminService := admin.NewService(jwtSvc, cfg.AdminKeyHash, modifiedCache, auditRepository)
	adminHandler := admin.NewHandler(adminService)

	// ── 11. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Harvest:   harvestHandler,
		Reference: referenceHandler,
		Admin:     adminHandler,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 12. Graceful Shutdown ─────────────────────────────────────────────
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

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
