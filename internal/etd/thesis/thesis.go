// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package thesis manages the uploaded manuscript and its review lifecycle.

The document moves through a small state machine:

	not_submitted → pending → accepted | rejected
	rejected      → pending           (resubmission)
	accepted      → ingested | ingest_error

Staff may reopen a pending or accepted thesis to not_submitted ("open
for re-upload"), and recover an ingest_error back to accepted so a
deposit can be retried without forcing a full resubmission. While a
thesis is anywhere past not_submitted/rejected it is locked: the
candidate cannot touch the document, metadata, or committee.
*/
package thesis

import (
	"time"

	"github.com/etheca/etheca/internal/etd/keyword"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/platform/apperr"
)

// Review lifecycle states.
const (
	StatusNotSubmitted = "not_submitted"
	StatusPending      = "pending"
	StatusAccepted     = "accepted"
	StatusRejected     = "rejected"
	StatusIngested     = "ingested"
	StatusIngestError  = "ingest_error"
)

// Submit precondition and transition errors. Each names the specific
// problem so the candidate knows what to fix.
var (
	ErrNoDocument         = apperr.InvalidState("Cannot submit: no document has been uploaded")
	ErrMetadataIncomplete = apperr.InvalidState("Cannot submit: metadata incomplete")
	ErrNoCommittee        = apperr.InvalidState("Cannot submit: no committee members")
	ErrNotSubmittable     = apperr.InvalidState("Cannot submit: thesis is not open for submission")
	ErrNotPending         = apperr.InvalidState("Only a pending thesis can be accepted or rejected")
	ErrNotReopenable      = apperr.InvalidState("Only a pending or accepted thesis can be opened for re-upload")
	ErrNotRecoverable     = apperr.InvalidState("Only a failed ingest can be reopened for ingestion")
	ErrLocked             = apperr.InvalidState("Thesis is under review and cannot be edited")
)

// Thesis is the manuscript record attached to a candidacy.
type Thesis struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`

	// FileName is the stored document name under the media root;
	// OriginalFileName preserves what the candidate called it.
	FileName         string `json:"file_name"`
	OriginalFileName string `json:"original_file_name"`
	Checksum         string `json:"checksum"`

	Title          string  `json:"title"`
	Abstract       string  `json:"abstract"`
	LanguageID     *string `json:"language_id"`
	NumPrelimPages string  `json:"num_prelim_pages"`
	NumBodyPages   *int    `json:"num_body_pages"`

	Status        string     `json:"status"`
	DateSubmitted *time.Time `json:"date_submitted"`
	DateAccepted  *time.Time `json:"date_accepted"`
	DateRejected  *time.Time `json:"date_rejected"`

	// PID is the persistent identifier assigned by the repository on
	// successful deposit.
	PID *string `json:"pid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Keywords        []*keyword.Keyword  `json:"keywords,omitempty"`
	Language        *reference.Language `json:"language,omitempty"`
	FormatChecklist *FormatChecklist    `json:"format_checklist,omitempty"`
}

// HasDocument reports whether a manuscript file has been uploaded.
func (t *Thesis) HasDocument() bool {
	return t.FileName != ""
}

// MetadataComplete reports whether the descriptive metadata required
// for submission is present: title, abstract, at least one keyword.
func (t *Thesis) MetadataComplete() bool {
	return t.Title != "" && t.Abstract != "" && len(t.Keywords) > 0
}

// IsLocked reports whether candidate edits are refused: everything past
// not_submitted/rejected is under review or deposited.
func (t *Thesis) IsLocked() bool {
	return t.Status != StatusNotSubmitted && t.Status != StatusRejected
}

// ReadyToSubmit reports whether Submit would succeed.
func (t *Thesis) ReadyToSubmit(hasCommittee bool) bool {
	return t.HasDocument() && t.MetadataComplete() && !t.IsLocked() && hasCommittee
}

var statusDisplay = map[string]string{
	StatusNotSubmitted: "Not Submitted",
	StatusPending:      "Awaiting Grad School Review",
	StatusAccepted:     "Accepted",
	StatusRejected:     "Rejected",
	StatusIngested:     "Ingested",
	StatusIngestError:  "Ingestion Error",
}

// StatusDisplay returns the human-readable label for the current status.
func (t *Thesis) StatusDisplay() string {
	return statusDisplay[t.Status]
}

/*
Submit moves the thesis into Graduate School review.

All preconditions are checked before any state changes, so a failed
submit leaves the thesis exactly as it was.
*/
func (t *Thesis) Submit(hasCommittee bool, now time.Time) error {
	if !t.HasDocument() {
		return ErrNoDocument
	}
	if !t.MetadataComplete() {
		return ErrMetadataIncomplete
	}
	if t.Status != StatusNotSubmitted && t.Status != StatusRejected {
		return ErrNotSubmittable
	}
	if !hasCommittee {
		return ErrNoCommittee
	}

	t.Status = StatusPending
	t.DateSubmitted = &now
	return nil
}

// Accept records a passed format review.
func (t *Thesis) Accept(now time.Time) error {
	if t.Status != StatusPending {
		return ErrNotPending
	}
	t.Status = StatusAccepted
	t.DateAccepted = &now
	return nil
}

// Reject records a failed format review; the thesis unlocks for rework.
func (t *Thesis) Reject(now time.Time) error {
	if t.Status != StatusPending {
		return ErrNotPending
	}
	t.Status = StatusRejected
	t.DateRejected = &now
	return nil
}

// OpenForReupload resets a pending or accepted thesis so the candidate
// can replace the document without a formal rejection.
func (t *Thesis) OpenForReupload() error {
	if t.Status != StatusPending && t.Status != StatusAccepted {
		return ErrNotReopenable
	}
	t.Status = StatusNotSubmitted
	return nil
}

// ReopenForIngest recovers a failed deposit back to accepted so the
// ingest can be retried. The formatting acceptance is retained.
func (t *Thesis) ReopenForIngest() error {
	if t.Status != StatusIngestError {
		return ErrNotRecoverable
	}
	t.Status = StatusAccepted
	return nil
}

// MarkIngested records a successful repository deposit.
func (t *Thesis) MarkIngested(pid string) {
	t.PID = &pid
	t.Status = StatusIngested
}

// MarkIngestError records a failed repository deposit.
func (t *Thesis) MarkIngestError() {
	t.Status = StatusIngestError
}

/*
ReadyToIngest reports whether the thesis is eligible for deposit as of
the given date: format-accepted, paperwork complete by that date, and
the candidacy's graduation year arrived.
*/
func (t *Thesis) ReadyToIngest(checklistCompleteAsOf bool, candidacyYear int, asOf time.Time) bool {
	return t.Status == StatusAccepted && checklistCompleteAsOf && candidacyYear <= asOf.Year()
}

// Global field names for validation
const (
	FieldTitle          = "title"
	FieldAbstract       = "abstract"
	FieldKeywords       = "keywords"
	FieldNumPrelimPages = "num_prelim_pages"
)
