// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"time"

	"github.com/etheca/etheca/internal/etd/reference"
)

// Checklist item field names, shared with the staff update API and the
// paperwork notifications.
const (
	ChecklistDissertationFee = "dissertation_fee"
	ChecklistBursarReceipt   = "bursar_receipt"
	ChecklistExitSurvey      = "gradschool_exit_survey"
	ChecklistEarnedDocs      = "earned_docs_survey"
	ChecklistPagesSubmitted  = "pages_submitted_to_gradschool"
)

// GradschoolChecklist records when each piece of completion paperwork
// arrived. A nil timestamp means the item is outstanding.
type GradschoolChecklist struct {
	ID              string     `json:"id"`
	CandidateID     string     `json:"candidate_id"`
	DissertationFee *time.Time `json:"dissertation_fee"`
	BursarReceipt   *time.Time `json:"bursar_receipt"`
	ExitSurvey      *time.Time `json:"gradschool_exit_survey"`
	EarnedDocs      *time.Time `json:"earned_docs_survey"`
	PagesSubmitted  *time.Time `json:"pages_submitted_to_gradschool"`
}

/*
Complete reports whether all required paperwork has arrived.

Every candidate owes a bursar receipt and their signature pages.
Doctoral candidates additionally owe the exit survey and the Survey of
Earned Doctorates. The fee marker is informational and never gates
completion.
*/
func (checklist *GradschoolChecklist) Complete(degreeType string) bool {
	return checklist.CompleteAsOf(degreeType, time.Now())
}

// CompleteAsOf reports whether the checklist was complete at a given
// moment: items received after asOf do not count.
func (checklist *GradschoolChecklist) CompleteAsOf(degreeType string, asOf time.Time) bool {
	receivedBy := func(ts *time.Time) bool {
		return ts != nil && !ts.After(asOf)
	}

	if !receivedBy(checklist.BursarReceipt) || !receivedBy(checklist.PagesSubmitted) {
		return false
	}
	if degreeType == reference.DegreeTypeMasters {
		return true
	}
	return receivedBy(checklist.ExitSurvey) && receivedBy(checklist.EarnedDocs)
}

// ChecklistItem is one row of the candidate-facing checklist view.
type ChecklistItem struct {
	Display     string     `json:"display"`
	StaffLabel  string     `json:"staff_label"`
	Field       string     `json:"field"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Items returns the checklist rows applicable to the degree type, in
// display order.
func (checklist *GradschoolChecklist) Items(degreeType string) []ChecklistItem {
	items := []ChecklistItem{
		{
			Display:     "Submit Bursar's Office receipt (white) showing that all outstanding debts have been paid",
			StaffLabel:  "Bursar Receipt",
			Field:       ChecklistBursarReceipt,
			CompletedAt: checklist.BursarReceipt,
		},
	}

	if degreeType == reference.DegreeTypeDoctorate {
		items = append(items,
			ChecklistItem{
				Display:     "Submit title page, abstract, and signature pages to Graduate School",
				StaffLabel:  "Signature Page",
				Field:       ChecklistPagesSubmitted,
				CompletedAt: checklist.PagesSubmitted,
			},
			ChecklistItem{
				Display:     "Complete Graduate School Exit Survey",
				StaffLabel:  "Grad School Exit Survey",
				Field:       ChecklistExitSurvey,
				CompletedAt: checklist.ExitSurvey,
			},
			ChecklistItem{
				Display:     "Submit Survey of Earned Doctorates",
				StaffLabel:  "Earned Doctorates Survey",
				Field:       ChecklistEarnedDocs,
				CompletedAt: checklist.EarnedDocs,
			},
		)
	} else {
		items = append(items, ChecklistItem{
			Display:     "Submit title page and signature pages to Graduate School",
			StaffLabel:  "Signature Page",
			Field:       ChecklistPagesSubmitted,
			CompletedAt: checklist.PagesSubmitted,
		})
	}

	return items
}

// markReceived stamps the named item with the given time. Unknown
// fields are ignored.
func (checklist *GradschoolChecklist) markReceived(field string, at time.Time) bool {
	switch field {
	case ChecklistDissertationFee:
		checklist.DissertationFee = &at
	case ChecklistBursarReceipt:
		checklist.BursarReceipt = &at
	case ChecklistExitSurvey:
		checklist.ExitSurvey = &at
	case ChecklistEarnedDocs:
		checklist.EarnedDocs = &at
	case ChecklistPagesSubmitted:
		checklist.PagesSubmitted = &at
	default:
		return false
	}
	return true
}
