// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"strings"
	"time"
)

// FormatChecklist is the staff reviewer's worksheet: one issue flag and
// comment per formatting element, plus free-form general comments. Its
// comments are itemized into the rejection notification.
type FormatChecklist struct {
	ID       string `json:"id"`
	ThesisID string `json:"thesis_id"`

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

	UpdatedAt time.Time `json:"updated_at"`
}

/*
IssuesText renders the recorded problems as the plain-text block
embedded in a rejection notification. thesisLabel is "thesis" or
"dissertation" in lowercase.
*/
func (checklist *FormatChecklist) IssuesText(thesisLabel string) string {
	var b strings.Builder

	if checklist.GeneralComments != "" {
		b.WriteString("General Comments:\n" + checklist.GeneralComments + "\n\n")
	}
	b.WriteString("These elements of your " + thesisLabel + " are not properly formatted:\n\n")

	sections := []struct {
		label   string
		comment string
	}{
		{"Title page", checklist.TitlePageComment},
		{"Signature page", checklist.SignaturePageComment},
		{"Font", checklist.FontComment},
		{"Spacing", checklist.SpacingComment},
		{"Margins", checklist.MarginsComment},
		{"Pagination", checklist.PaginationComment},
		{"Format", checklist.FormatComment},
		{"Graphs", checklist.GraphsComment},
		{"Dating", checklist.DatingComment},
	}
	for _, section := range sections {
		if section.comment != "" {
			b.WriteString(section.label + ": " + section.comment + "\n\n")
		}
	}

	return b.String()
}
