// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/etheca/etheca/internal/etd/candidate"
	"github.com/etheca/etheca/internal/etd/keyword"
	"github.com/etheca/etheca/internal/etd/notify"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/validate"
	"github.com/etheca/etheca/pkg/pointer"
	"github.com/etheca/etheca/pkg/textnorm"
)

type Service struct {
	repo       Repository
	candidates *candidate.Service
	keywords   *keyword.Service
	references *reference.Service
	notifier   *notify.Notifier
	documents  *DocumentStore
	logger     *slog.Logger
}

func NewService(
	repo Repository,
	candidates *candidate.Service,
	keywords *keyword.Service,
	references *reference.Service,
	notifier *notify.Notifier,
	documents *DocumentStore,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		candidates: candidates,
		keywords:   keywords,
		references: references,
		notifier:   notifier,
		documents:  documents,
		logger:     logger,
	}
}

func (service *Service) GetThesis(context context.Context, id string) (*Thesis, error) {
	return service.repo.GetThesis(context, id)
}

// GetOwnThesis loads the caller's thesis through their candidacy.
func (service *Service) GetOwnThesis(context context.Context, netid string) (*Thesis, error) {
	c, err := service.ownCandidate(context, netid)
	if err != nil {
		return nil, err
	}
	return service.repo.GetThesisByCandidate(context, c.ID)
}

// Overview is the candidate dashboard view of a thesis.
type Overview struct {
	*Thesis
	StatusDisplay string `json:"status_display"`
	// ReadyToSubmit mirrors the Submit preconditions so the dashboard
	// can enable the submit action without a trial call.
	ReadyToSubmit bool `json:"ready_to_submit"`
}

// GetOwnOverview loads the caller's thesis with its dashboard fields.
func (service *Service) GetOwnOverview(context context.Context, netid string) (*Overview, error) {
	c, err := service.ownCandidate(context, netid)
	if err != nil {
		return nil, err
	}
	t, err := service.repo.GetThesisByCandidate(context, c.ID)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Thesis:        t,
		StatusDisplay: t.StatusDisplay(),
		ReadyToSubmit: t.ReadyToSubmit(len(c.Committee) > 0),
	}, nil
}

/*
UploadDocument stores a new manuscript file for the caller's thesis.

Only PDF uploads are accepted. The file is stored under the thesis id,
so re-uploading replaces the previous manuscript; the name the candidate
gave the file is preserved for display and for the eventual deposit.
*/
func (service *Service) UploadDocument(context context.Context, netid, originalName string, document io.Reader) (*Thesis, error) {
	t, err := service.GetOwnThesis(context, netid)
	if err != nil {
		return nil, err
	}
	if t.IsLocked() {
		return nil, ErrLocked
	}
	if !strings.EqualFold(filepath.Ext(originalName), ".pdf") {
		return nil, apperr.ValidationError("Document must be a PDF",
			apperr.FieldError{Field: "document", Message: "Only PDF files are accepted"})
	}

	checksum, err := service.documents.Save(t.ID+".pdf", document)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	t.FileName = t.ID + ".pdf"
	t.OriginalFileName = filepath.Base(originalName)
	t.Checksum = checksum
	if err := service.repo.UpdateDocument(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_document_uploaded",
		slog.String("thesis_id", t.ID),
		slog.String("checksum", checksum),
	)
	return t, nil
}

// OpenDocument returns the stored manuscript and its display name.
func (service *Service) OpenDocument(context context.Context, t *Thesis) (io.ReadCloser, string, error) {
	if !t.HasDocument() {
		return nil, "", apperr.NotFound("Document")
	}

	file, err := service.documents.Open(t.FileName)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	return file, t.OriginalFileName, nil
}

// MetadataInput carries the candidate-editable descriptive fields.
// Keywords holds autocomplete selections: stored ids, vocabulary picks,
// or free text.
type MetadataInput struct {
	Title          string   `json:"title"`
	Abstract       string   `json:"abstract"`
	Keywords       []string `json:"keywords"`
	LanguageID     string   `json:"language_id"`
	NumPrelimPages string   `json:"num_prelim_pages"`
	NumBodyPages   *int     `json:"num_body_pages"`
}

/*
UpdateMetadata replaces the descriptive metadata of the caller's thesis.

Title and abstract are cleaned of pasted markup. Keyword selections are
resolved against stored terms and the controlled vocabulary, creating
rows as needed. An unset language defaults to English.
*/
func (service *Service) UpdateMetadata(context context.Context, netid string, input MetadataInput) (*Thesis, error) {
	t, err := service.GetOwnThesis(context, netid)
	if err != nil {
		return nil, err
	}
	if t.IsLocked() {
		return nil, ErrLocked
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		Required(FieldAbstract, input.Abstract).
		MaxLen(FieldNumPrelimPages, input.NumPrelimPages, 10).
		Custom(FieldKeywords, len(input.Keywords) == 0, "At least one keyword is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	t.Title = textnorm.Clean(input.Title)
	t.Abstract = textnorm.Clean(input.Abstract)
	t.NumPrelimPages = input.NumPrelimPages
	t.NumBodyPages = input.NumBodyPages

	t.Keywords = t.Keywords[:0]
	seen := map[string]bool{}
	for _, value := range input.Keywords {
		kw, err := service.keywords.Resolve(context, value)
		if err != nil {
			return nil, err
		}
		if seen[kw.ID] {
			continue
		}
		seen[kw.ID] = true
		t.Keywords = append(t.Keywords, kw)
	}

	languageID := input.LanguageID
	if languageID == "" {
		language, err := service.references.DefaultLanguage(context)
		if err != nil {
			return nil, err
		}
		languageID = language.ID
	}
	t.LanguageID = &languageID

	if err := service.repo.UpdateMetadata(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_metadata_updated", slog.String("thesis_id", t.ID))
	return service.repo.GetThesis(context, t.ID)
}

/*
Submit moves the caller's thesis into Graduate School review and notifies
the reviewers.
*/
func (service *Service) Submit(context context.Context, netid string) (*Thesis, error) {
	c, err := service.ownCandidate(context, netid)
	if err != nil {
		return nil, err
	}
	t, err := service.repo.GetThesisByCandidate(context, c.ID)
	if err != nil {
		return nil, err
	}

	if err := t.Submit(len(c.Committee) > 0, time.Now()); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_submitted", slog.String("thesis_id", t.ID))

	// The submission is already recorded; a failed notice surfaces as an
	// error without undoing it.
	if err := service.notifier.Submitted(context, notifyCandidate(c, t)); err != nil {
		return nil, apperr.Internal(err)
	}
	return t, nil
}

// Accept records a passed format review and notifies the candidate.
func (service *Service) Accept(context context.Context, thesisID string) (*Thesis, error) {
	t, c, err := service.thesisWithCandidate(context, thesisID)
	if err != nil {
		return nil, err
	}

	if err := t.Accept(time.Now()); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_accepted", slog.String("thesis_id", t.ID))

	if err := service.notifier.Accepted(context, notifyCandidate(c, t)); err != nil {
		return nil, apperr.Internal(err)
	}
	return t, nil
}

// Reject records a failed format review. The format checklist's comments
// are itemized into the rejection notification.
func (service *Service) Reject(context context.Context, thesisID string) (*Thesis, error) {
	t, c, err := service.thesisWithCandidate(context, thesisID)
	if err != nil {
		return nil, err
	}

	if err := t.Reject(time.Now()); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_rejected", slog.String("thesis_id", t.ID))

	issues := t.FormatChecklist.IssuesText(strings.ToLower(c.ThesisLabel()))
	if err := service.notifier.Rejected(context, notifyCandidate(c, t), issues); err != nil {
		return nil, apperr.Internal(err)
	}
	return t, nil
}

// OpenForReupload unlocks a pending or accepted thesis so the candidate
// can replace the manuscript.
func (service *Service) OpenForReupload(context context.Context, thesisID string) (*Thesis, error) {
	t, err := service.repo.GetThesis(context, thesisID)
	if err != nil {
		return nil, err
	}

	if err := t.OpenForReupload(); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_opened_for_reupload", slog.String("thesis_id", t.ID))
	return t, nil
}

// ReopenForIngest recovers a failed deposit back to accepted so the
// ingest can be retried.
func (service *Service) ReopenForIngest(context context.Context, thesisID string) (*Thesis, error) {
	t, err := service.repo.GetThesis(context, thesisID)
	if err != nil {
		return nil, err
	}

	if err := t.ReopenForIngest(); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateStatus(context, t); err != nil {
		return nil, err
	}

	service.logger.Info("thesis_reopened_for_ingest", slog.String("thesis_id", t.ID))
	return t, nil
}

// FormatChecklistInput carries the reviewer's worksheet fields.
type FormatChecklistInput struct {
	TitlePageIssue       bool   `json:"title_page_issue"`
	TitlePageComment     string `json:"title_page_comment"`
	SignaturePageIssue   bool   `json:"signature_page_issue"`
	SignaturePageComment string `json:"signature_page_comment"`
	FontIssue            bool   `json:"font_issue"`
	FontComment          string `json:"font_comment"`
	SpacingIssue         bool   `json:"spacing_issue"`
	SpacingComment       string `json:"spacing_comment"`
	MarginsIssue         bool   `json:"margins_issue"`
	MarginsComment       string `json:"margins_comment"`
	PaginationIssue      bool   `json:"pagination_issue"`
	PaginationComment    string `json:"pagination_comment"`
	FormatIssue          bool   `json:"format_issue"`
	FormatComment        string `json:"format_comment"`
	GraphsIssue          bool   `json:"graphs_issue"`
	GraphsComment        string `json:"graphs_comment"`
	DatingIssue          bool   `json:"dating_issue"`
	DatingComment        string `json:"dating_comment"`
	GeneralComments      string `json:"general_comments"`
}

// UpdateFormatChecklist replaces the reviewer's worksheet for a thesis.
func (service *Service) UpdateFormatChecklist(context context.Context, thesisID string, input FormatChecklistInput) (*Thesis, error) {
	t, err := service.repo.GetThesis(context, thesisID)
	if err != nil {
		return nil, err
	}

	checklist := t.FormatChecklist
	checklist.TitlePageIssue = input.TitlePageIssue
	checklist.TitlePageComment = input.TitlePageComment
	checklist.SignaturePageIssue = input.SignaturePageIssue
	checklist.SignaturePageComment = input.SignaturePageComment
	checklist.FontIssue = input.FontIssue
	checklist.FontComment = input.FontComment
	checklist.SpacingIssue = input.SpacingIssue
	checklist.SpacingComment = input.SpacingComment
	checklist.MarginsIssue = input.MarginsIssue
	checklist.MarginsComment = input.MarginsComment
	checklist.PaginationIssue = input.PaginationIssue
	checklist.PaginationComment = input.PaginationComment
	checklist.FormatIssue = input.FormatIssue
	checklist.FormatComment = input.FormatComment
	checklist.GraphsIssue = input.GraphsIssue
	checklist.GraphsComment = input.GraphsComment
	checklist.DatingIssue = input.DatingIssue
	checklist.DatingComment = input.DatingComment
	checklist.GeneralComments = input.GeneralComments

	if err := service.repo.UpdateFormatChecklist(context, checklist); err != nil {
		return nil, err
	}

	service.logger.Info("format_checklist_updated", slog.String("thesis_id", t.ID))
	return t, nil
}

func (service *Service) ownCandidate(context context.Context, netid string) (*candidate.Candidate, error) {
	c, err := service.candidates.GetCandidateByNetID(context, netid)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFound("Candidacy")
	}
	return c, err
}

func (service *Service) thesisWithCandidate(context context.Context, thesisID string) (*Thesis, *candidate.Candidate, error) {
	t, err := service.repo.GetThesis(context, thesisID)
	if err != nil {
		return nil, nil, err
	}
	c, err := service.candidates.GetCandidate(context, t.CandidateID)
	if err != nil {
		return nil, nil, err
	}
	return t, c, nil
}

func notifyCandidate(c *candidate.Candidate, t *Thesis) notify.Candidate {
	return notify.Candidate{
		ID:              c.ID,
		FirstName:       c.Person.FirstName,
		LastName:        c.Person.LastName,
		FormattedName:   c.Person.FormattedName(),
		Email:           pointer.Val(c.Person.Email),
		Title:           t.Title,
		Label:           c.ThesisLabel(),
		FullLabel:       c.ThesisFullLabel(),
		DegreeAdjective: c.Degree.TypeAdjective(),
	}
}
