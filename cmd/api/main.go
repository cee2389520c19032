// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

// Command api is the entry point for the Etheca HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
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

	"github.com/etheca/etheca/internal/api"
	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/ingest"
	"github.com/etheca/etheca/internal/etd/keyword"
	"github.com/etheca/etheca/internal/etd/notify"
	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/etd/thesis"
	"github.com/etheca/etheca/internal/platform/config"
	"github.com/etheca/etheca/internal/platform/constants"
	"github.com/etheca/etheca/internal/platform/mailer"
	"github.com/etheca/etheca/internal/platform/migration"
	pgstore "github.com/etheca/etheca/internal/platform/postgres"
	redisstore "github.com/etheca/etheca/internal/platform/redis"
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

	log.Info("service_initializing")

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
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	// ── 6. Mail & Documents ───────────────────────────────────────────────
	var sender mailer.Sender
	if cfg.IsDevelopment() && cfg.SMTPHost == "" {
		// No relay configured in development: record instead of send.
		sender = &mailer.Noop{}
	} else {
		sender, err = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.ServerEmail)
		must(log, err, "initialize smtp sender")
	}
	notifier := notify.NewNotifier(sender, cfg.InstitutionName, cfg.ServerRoot, cfg.ServerEmail, cfg.GradschoolEmail, log)

	documents, err := thesis.NewDocumentStore(cfg.MediaRoot)
	must(log, err, "initialize document store")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	peopleService := people.NewService(people.NewPostgresRepository(pool), log)
	referenceService := reference.NewService(reference.NewPostgresRepository(pool), log)

	vocabClient := keyword.NewVocabClient(cfg.FastLookupBaseURL, log)
	suggestCache := keyword.NewSuggestCache(rdb, log)
	keywordService := keyword.NewService(keyword.NewPostgresRepository(pool), vocabClient, suggestCache, log)

	candidateService := candidate.NewService(candidate.NewPostgresRepository(pool), peopleService, notifier, log)

	thesisRepository := thesis.NewPostgresRepository(pool)
	thesisService := thesis.NewService(thesisRepository, candidateService, keywordService, referenceService, notifier, documents, log)

	depositClient := ingest.NewClient(cfg.RepositoryAPIURL, cfg.DepositIdentity, cfg.AuthorizationCode)
	ingestService := ingest.NewService(
		ingest.NewPostgresRepository(pool),
		thesisRepository,
		candidateService,
		documents,
		depositClient,
		ingest.Rights{
			OwnerID:           cfg.RightsOwnerID,
			PublicIdentity:    cfg.PublicDisplayIdentity,
			EmbargoedIdentity: cfg.EmbargoedDisplayIdentity,
		},
		cfg.InstitutionName,
		cfg.DepositorName,
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Candidate: candidate.NewHandler(candidateService),
		Thesis:    thesis.NewHandler(thesisService),
		Keyword:   keyword.NewHandler(keywordService),
		Reference: reference.NewHandler(referenceService),
		People:    people.NewHandler(peopleService),
		Ingest:    ingest.NewHandler(ingestService),
	}

	// The server context outlives startup: it owns the rate limiter's
	// cleanup goroutine for the life of the process.
	server := api.NewServer(context.Background(), cfg, log, handlers)

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
