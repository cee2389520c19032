// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/etd/keyword"
)

func submittable() *Thesis {
	return &Thesis{
		ID:       "t1",
		FileName: "t1.pdf",
		Title:    "Sediment Transport in Estuarine Channels",
		Abstract: "A study of sediment transport.",
		Keywords: []*keyword.Keyword{{ID: "k1", Text: "Sediments"}},
		Status:   StatusNotSubmitted,
	}
}

func TestSubmit(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		mutate       func(*Thesis)
		hasCommittee bool
		wantErr      error
	}{
		{"from_not_submitted", func(t *Thesis) {}, true, nil},
		{"resubmit_after_rejection", func(t *Thesis) { t.Status = StatusRejected }, true, nil},
		{"no_document", func(t *Thesis) { t.FileName = "" }, true, ErrNoDocument},
		{"no_title", func(t *Thesis) { t.Title = "" }, true, ErrMetadataIncomplete},
		{"no_abstract", func(t *Thesis) { t.Abstract = "" }, true, ErrMetadataIncomplete},
		{"no_keywords", func(t *Thesis) { t.Keywords = nil }, true, ErrMetadataIncomplete},
		{"no_committee", func(t *Thesis) {}, false, ErrNoCommittee},
		{"already_pending", func(t *Thesis) { t.Status = StatusPending }, true, ErrNotSubmittable},
		{"already_accepted", func(t *Thesis) { t.Status = StatusAccepted }, true, ErrNotSubmittable},
		{"already_ingested", func(t *Thesis) { t.Status = StatusIngested }, true, ErrNotSubmittable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thesis := submittable()
			tt.mutate(thesis)
			before := thesis.Status

			err := thesis.Submit(tt.hasCommittee, now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// A refused submit must not change anything.
				assert.Equal(t, before, thesis.Status)
				assert.Nil(t, thesis.DateSubmitted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusPending, thesis.Status)
			require.NotNil(t, thesis.DateSubmitted)
			assert.Equal(t, now, *thesis.DateSubmitted)
		})
	}
}

func TestSubmitChecksDocumentBeforeStatus(t *testing.T) {
	// An ingested thesis with its file gone should still report the
	// missing document first, matching the precondition order.
	thesis := submittable()
	thesis.FileName = ""
	thesis.Status = StatusIngested

	assert.ErrorIs(t, thesis.Submit(true, time.Now()), ErrNoDocument)
}

func TestAcceptReject(t *testing.T) {
	now := time.Now()

	t.Run("accept_pending", func(t *testing.T) {
		thesis := &Thesis{Status: StatusPending}
		require.NoError(t, thesis.Accept(now))
		assert.Equal(t, StatusAccepted, thesis.Status)
		require.NotNil(t, thesis.DateAccepted)
	})

	t.Run("reject_pending", func(t *testing.T) {
		thesis := &Thesis{Status: StatusPending}
		require.NoError(t, thesis.Reject(now))
		assert.Equal(t, StatusRejected, thesis.Status)
		require.NotNil(t, thesis.DateRejected)
	})

	for _, status := range []string{StatusNotSubmitted, StatusAccepted, StatusRejected, StatusIngested, StatusIngestError} {
		t.Run("refused_from_"+status, func(t *testing.T) {
			thesis := &Thesis{Status: status}
			assert.ErrorIs(t, thesis.Accept(now), ErrNotPending)
			assert.ErrorIs(t, thesis.Reject(now), ErrNotPending)
			assert.Equal(t, status, thesis.Status)
		})
	}
}

func TestOpenForReupload(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{StatusPending, false},
		{StatusAccepted, false},
		{StatusNotSubmitted, true},
		{StatusRejected, true},
		{StatusIngested, true},
		{StatusIngestError, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			thesis := &Thesis{Status: tt.status}
			err := thesis.OpenForReupload()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotReopenable)
				assert.Equal(t, tt.status, thesis.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusNotSubmitted, thesis.Status)
		})
	}
}

func TestReopenForIngest(t *testing.T) {
	thesis := &Thesis{Status: StatusIngestError}
	require.NoError(t, thesis.ReopenForIngest())
	assert.Equal(t, StatusAccepted, thesis.Status)

	for _, status := range []string{StatusNotSubmitted, StatusPending, StatusAccepted, StatusRejected, StatusIngested} {
		thesis := &Thesis{Status: status}
		assert.ErrorIs(t, thesis.ReopenForIngest(), ErrNotRecoverable)
	}
}

func TestMarkIngested(t *testing.T) {
	thesis := &Thesis{Status: StatusAccepted}
	thesis.MarkIngested("etd:1234")
	assert.Equal(t, StatusIngested, thesis.Status)
	require.NotNil(t, thesis.PID)
	assert.Equal(t, "etd:1234", *thesis.PID)

	failed := &Thesis{Status: StatusAccepted}
	failed.MarkIngestError()
	assert.Equal(t, StatusIngestError, failed.Status)
	assert.Nil(t, failed.PID)
}

func TestIsLocked(t *testing.T) {
	locked := map[string]bool{
		StatusNotSubmitted: false,
		StatusRejected:     false,
		StatusPending:      true,
		StatusAccepted:     true,
		StatusIngested:     true,
		StatusIngestError:  true,
	}

	for status, want := range locked {
		thesis := &Thesis{Status: status}
		assert.Equal(t, want, thesis.IsLocked(), status)
	}
}

func TestReadyToSubmit(t *testing.T) {
	ready := submittable()
	assert.True(t, ready.ReadyToSubmit(true))

	assert.False(t, ready.ReadyToSubmit(false))

	noDocument := submittable()
	noDocument.FileName = ""
	assert.False(t, noDocument.ReadyToSubmit(true))

	pending := submittable()
	pending.Status = StatusPending
	assert.False(t, pending.ReadyToSubmit(true))
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Awaiting Grad School Review", (&Thesis{Status: StatusPending}).StatusDisplay())
	assert.Equal(t, "Ingestion Error", (&Thesis{Status: StatusIngestError}).StatusDisplay())
}

func TestReadyToIngest(t *testing.T) {
	asOf := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		status            string
		checklistComplete bool
		year              int
		want              bool
	}{
		{"eligible", StatusAccepted, true, 2026, true},
		{"earlier_graduation_year", StatusAccepted, true, 2025, true},
		{"future_graduation_year", StatusAccepted, true, 2027, false},
		{"paperwork_outstanding", StatusAccepted, false, 2026, false},
		{"still_pending", StatusPending, true, 2026, false},
		{"already_ingested", StatusIngested, true, 2026, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thesis := &Thesis{Status: tt.status}
			assert.Equal(t, tt.want, thesis.ReadyToIngest(tt.checklistComplete, tt.year, asOf))
		})
	}
}

func TestIssuesText(t *testing.T) {
	checklist := &FormatChecklist{
		GeneralComments:   "Check the author name spelling.",
		TitlePageComment:  "Wrong date on the title page.",
		PaginationComment: "Page numbers restart in chapter 2.",
	}

	text := checklist.IssuesText("dissertation")

	assert.True(t, strings.HasPrefix(text, "General Comments:\nCheck the author name spelling.\n\n"))
	assert.Contains(t, text, "These elements of your dissertation are not properly formatted:\n\n")
	assert.Contains(t, text, "Title page: Wrong date on the title page.\n\n")
	assert.Contains(t, text, "Pagination: Page numbers restart in chapter 2.\n\n")
	assert.NotContains(t, text, "Font:")

	// Title page issues are listed before pagination issues.
	assert.Less(t, strings.Index(text, "Title page:"), strings.Index(text, "Pagination:"))
}

func TestIssuesTextWithoutGeneralComments(t *testing.T) {
	checklist := &FormatChecklist{FontComment: "Body text is not 12pt."}

	text := checklist.IssuesText("thesis")

	assert.True(t, strings.HasPrefix(text, "These elements of your thesis are not properly formatted:"))
	assert.Contains(t, text, "Font: Body text is not 12pt.")
}
