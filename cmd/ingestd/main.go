// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

// Command ingestd runs one repository deposit batch and exits.
//
// It finds every thesis eligible for deposit (format-accepted, paperwork
// complete, graduation year arrived) and posts them to the repository
// sequentially. Intended to be run from cron or triggered manually; the
// same batch is also reachable through the staff API.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/ingest"
	"github.com/etheca/etheca/internal/etd/notify"
	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/etd/thesis"
	"github.com/etheca/etheca/internal/platform/config"
	"github.com/etheca/etheca/internal/platform/constants"
	"github.com/etheca/etheca/internal/platform/mailer"
	pgstore "github.com/etheca/etheca/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-ingestd"))
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	documents, err := thesis.NewDocumentStore(cfg.MediaRoot)
	must(log, err, "initialize document store")

	// Deposits send no mail; checklist lookups only need a recorder.
	notifier := notify.NewNotifier(&mailer.Noop{}, cfg.InstitutionName, cfg.ServerRoot, cfg.ServerEmail, cfg.GradschoolEmail, log)

	peopleService := people.NewService(people.NewPostgresRepository(pool), log)
	candidateService := candidate.NewService(candidate.NewPostgresRepository(pool), peopleService, notifier, log)

	ingestService := ingest.NewService(
		ingest.NewPostgresRepository(pool),
		thesis.NewPostgresRepository(pool),
		candidateService,
		documents,
		ingest.NewClient(cfg.RepositoryAPIURL, cfg.DepositIdentity, cfg.AuthorizationCode),
		ingest.Rights{
			OwnerID:           cfg.RightsOwnerID,
			PublicIdentity:    cfg.PublicDisplayIdentity,
			EmbargoedIdentity: cfg.EmbargoedDisplayIdentity,
		},
		cfg.InstitutionName,
		cfg.DepositorName,
		log,
	)

	result, err := ingestService.RunBatch(context.Background())
	must(log, err, "run ingest batch")

	log.Info("ingest_batch_done",
		slog.Int("ingested", len(result.Ingested)),
		slog.Int("failed", len(result.Failed)),
	)
	if len(result.Failed) > 0 {
		os.Exit(1)
	}
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
