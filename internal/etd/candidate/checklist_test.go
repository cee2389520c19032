// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/etheca/etheca/internal/etd/reference"
)

func ts(t time.Time) *time.Time { return &t }

func TestGradschoolChecklist_Complete(t *testing.T) {
	received := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		checklist  GradschoolChecklist
		degreeType string
		want       bool
	}{
		{
			"masters_base_items_sufficient",
			GradschoolChecklist{BursarReceipt: ts(received), PagesSubmitted: ts(received)},
			reference.DegreeTypeMasters,
			true,
		},
		{
			"doctorate_needs_surveys",
			GradschoolChecklist{BursarReceipt: ts(received), PagesSubmitted: ts(received)},
			reference.DegreeTypeDoctorate,
			false,
		},
		{
			"doctorate_all_items",
			GradschoolChecklist{
				BursarReceipt:  ts(received),
				PagesSubmitted: ts(received),
				ExitSurvey:     ts(received),
				EarnedDocs:     ts(received),
			},
			reference.DegreeTypeDoctorate,
			true,
		},
		{
			"missing_bursar_receipt",
			GradschoolChecklist{PagesSubmitted: ts(received)},
			reference.DegreeTypeMasters,
			false,
		},
		{
			"fee_marker_never_gates",
			GradschoolChecklist{DissertationFee: ts(received)},
			reference.DegreeTypeMasters,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.checklist.Complete(tt.degreeType))
		})
	}
}

func TestGradschoolChecklist_CompleteAsOf(t *testing.T) {
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	checklist := GradschoolChecklist{
		BursarReceipt:  ts(march),
		PagesSubmitted: ts(april),
	}

	// Pages arrived in April, so the checklist was not complete in March.
	assert.False(t, checklist.CompleteAsOf(reference.DegreeTypeMasters, march))
	assert.True(t, checklist.CompleteAsOf(reference.DegreeTypeMasters, april))
}

func TestGradschoolChecklist_Items(t *testing.T) {
	checklist := GradschoolChecklist{}

	doctorate := checklist.Items(reference.DegreeTypeDoctorate)
	assert.Len(t, doctorate, 4)
	assert.Equal(t, ChecklistBursarReceipt, doctorate[0].Field)

	masters := checklist.Items(reference.DegreeTypeMasters)
	assert.Len(t, masters, 2)
	assert.Equal(t, ChecklistPagesSubmitted, masters[1].Field)
}

func TestGradschoolChecklist_MarkReceived(t *testing.T) {
	checklist := GradschoolChecklist{}
	now := time.Now()

	assert.True(t, checklist.markReceived(ChecklistBursarReceipt, now))
	assert.NotNil(t, checklist.BursarReceipt)

	assert.False(t, checklist.markReceived("unknown_field", now))
}

func TestCandidate_ThesisLabels(t *testing.T) {
	doctoral := &Candidate{Degree: &reference.Degree{DegreeType: reference.DegreeTypeDoctorate}}
	masters := &Candidate{Degree: &reference.Degree{DegreeType: reference.DegreeTypeMasters}}

	assert.Equal(t, "Dissertation", doctoral.ThesisLabel())
	assert.Equal(t, "PhD Dissertation", doctoral.ThesisFullLabel())
	assert.Equal(t, "Thesis", masters.ThesisLabel())
	assert.Equal(t, "Masters Thesis", masters.ThesisFullLabel())
}
