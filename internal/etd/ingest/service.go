// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/thesis"
	"github.com/etheca/etheca/internal/platform/apperr"
)

type Service struct {
	repo       Repository
	theses     thesis.Repository
	candidates *candidate.Service
	documents  *thesis.DocumentStore
	client     *Client
	logger     *slog.Logger

	rights        Rights
	institution   string
	depositorName string
}

func NewService(
	repo Repository,
	theses thesis.Repository,
	candidates *candidate.Service,
	documents *thesis.DocumentStore,
	client *Client,
	rights Rights,
	institution, depositorName string,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		theses:        theses,
		candidates:    candidates,
		documents:     documents,
		client:        client,
		logger:        logger,
		rights:        rights,
		institution:   institution,
		depositorName: depositorName,
	}
}

/*
Ingest deposits a single thesis into the repository.

The thesis must be fully eligible: format-accepted, paperwork complete,
graduation year arrived. On success the assigned pid is recorded; on
any deposit failure the thesis is marked ingest_error and the error
surfaces with the upstream status and body, leaving staff to retry via
ReopenForIngest once the cause is fixed.
*/
func (service *Service) Ingest(context context.Context, thesisID string) (*thesis.Thesis, error) {
	t, err := service.theses.GetThesis(context, thesisID)
	if err != nil {
		return nil, err
	}
	c, err := service.candidates.GetCandidate(context, t.CandidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !t.ReadyToIngest(c.Checklist.CompleteAsOf(c.Degree.DegreeType, now), c.Year, now) {
		return nil, apperr.InvalidState(fmt.Sprintf("Thesis %q is not ready for ingestion", t.Title))
	}
	if c.Department.CollectionID == nil {
		return nil, apperr.InvalidState("Department has no repository collection")
	}

	fields, err := service.depositFields(t, c)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	document, err := service.documents.Open(t.FileName)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer document.Close()

	pid, err := service.client.Deposit(context, fields, t.FileName, document)
	if err != nil {
		t.MarkIngestError()
		if statusErr := service.theses.UpdateStatus(context, t); statusErr != nil {
			return nil, statusErr
		}
		service.logger.Error("thesis_ingest_failed",
			slog.String("thesis_id", t.ID),
			slog.Any("error", err),
		)
		return nil, apperr.IngestFailed("Repository deposit failed: "+err.Error(), err)
	}

	t.MarkIngested(pid)
	if err := service.theses.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_ingested",
		slog.String("thesis_id", t.ID),
		slog.String("pid", pid),
	)
	return t, nil
}

func (service *Service) depositFields(t *thesis.Thesis, c *candidate.Candidate) (map[string]string, error) {
	rights, err := service.rights.rightsField(c)
	if err != nil {
		return nil, err
	}
	ir, err := irField(*c.Department.CollectionID, service.depositorName)
	if err != nil {
		return nil, err
	}
	modsXML, err := MapMODS(t, c, service.institution)
	if err != nil {
		return nil, err
	}
	mods, err := modsField(modsXML)
	if err != nil {
		return nil, err
	}
	rels, err := relsField(c)
	if err != nil {
		return nil, err
	}
	contentStreams, err := contentStreamsField(t.FileName)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"rights":          rights,
		"ir":              ir,
		"mods":            mods,
		"rels":            rels,
		"content_streams": contentStreams,
	}, nil
}

/*
FindEligible returns the theses eligible for deposit as of a date.

Acceptance alone does not make a thesis depositable, so the query runs
in two stages: a coarse storage filter on status, then the full
eligibility predicate per thesis against its candidacy.
*/
func (service *Service) FindEligible(context context.Context, asOf time.Time) ([]*thesis.Thesis, error) {
	ids, err := service.repo.ListAcceptedThesisIDs(context)
	if err != nil {
		return nil, err
	}

	eligible := []*thesis.Thesis{}
	for _, id := range ids {
		t, err := service.theses.GetThesis(context, id)
		if err != nil {
			return nil, err
		}
		c, err := service.candidates.GetCandidate(context, t.CandidateID)
		if err != nil {
			return nil, err
		}
		if t.ReadyToIngest(c.Checklist.CompleteAsOf(c.Degree.DegreeType, asOf), c.Year, asOf) {
			eligible = append(eligible, t)
		}
	}
	return eligible, nil
}

// BatchResult summarizes one deposit run.
type BatchResult struct {
	Ingested []string       `json:"ingested"`
	Failed   []BatchFailure `json:"failed"`
}

// BatchFailure records one thesis that could not be deposited.
type BatchFailure struct {
	ThesisID string `json:"thesis_id"`
	Error    string `json:"error"`
}

// RunBatch deposits every eligible thesis sequentially. One failed
// deposit does not halt the rest of the batch.
func (service *Service) RunBatch(context context.Context) (*BatchResult, error) {
	eligible, err := service.FindEligible(context, time.Now())
	if err != nil {
		return nil, err
	}

	service.logger.Info("ingest_batch_started", slog.Int("eligible", len(eligible)))

	result := &BatchResult{Ingested: []string{}, Failed: []BatchFailure{}}
	for _, t := range eligible {
		if _, err := service.Ingest(context, t.ID); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ThesisID: t.ID, Error: err.Error()})
			continue
		}
		result.Ingested = append(result.Ingested, t.ID)
	}

	service.logger.Info("ingest_batch_finished",
		slog.Int("ingested", len(result.Ingested)),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}
