// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package candidate manages degree candidates: their registration, thesis
committee, and the Graduate School's paperwork checklist.

Registering a candidacy creates the companion rows the rest of the
workflow hangs off: an empty thesis shell and a blank paperwork
checklist. A candidate may optionally embargo their thesis for two years
or, with staff intervention, restrict access entirely until a given date.
*/
package candidate

import (
	"time"

	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/etd/reference"
)

// Candidate is a person pursuing a degree in a given year.
type Candidate struct {
	ID                   string     `json:"id"`
	PersonID             string     `json:"person_id"`
	DateRegistered       time.Time  `json:"date_registered"`
	Year                 int        `json:"year"`
	DepartmentID         string     `json:"department_id"`
	DegreeID             string     `json:"degree_id"`
	EmbargoEndYear       *int       `json:"embargo_end_year"`
	PrivateAccessEndDate *time.Time `json:"private_access_end_date"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Person     *people.Person        `json:"person,omitempty"`
	Degree     *reference.Degree     `json:"degree,omitempty"`
	Department *reference.Department `json:"department,omitempty"`
	Committee  []*CommitteeMember    `json:"committee,omitempty"`
	Checklist  *GradschoolChecklist  `json:"checklist,omitempty"`
	Thesis     *ThesisSummary        `json:"thesis,omitempty"`
}

// ThesisSummary is the slice of thesis state the candidate views need.
// The full document record lives in the thesis package.
type ThesisSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	DateSubmitted *time.Time `json:"date_submitted"`
}

// IsLocked reports whether the thesis is past candidate editing.
// Everything but not_submitted and rejected freezes the committee along
// with the manuscript and its metadata.
func (s *ThesisSummary) IsLocked() bool {
	return s.Status != "not_submitted" && s.Status != "rejected"
}

// ThesisLabel returns "Thesis" for masters candidates, "Dissertation"
// for doctoral ones.
func (c *Candidate) ThesisLabel() string {
	if c.Degree != nil && c.Degree.IsDoctorate() {
		return "Dissertation"
	}
	return "Thesis"
}

// ThesisFullLabel returns the long form used in staff-facing subjects.
func (c *Candidate) ThesisFullLabel() string {
	if c.Degree != nil && c.Degree.IsDoctorate() {
		return "PhD Dissertation"
	}
	return "Masters Thesis"
}

// Committee member roles.
const (
	RoleReader  = "reader"
	RoleAdvisor = "advisor"
)

// CommitteeMember is one reader or advisor on a candidate's committee.
// Internal members carry a department; external ones a free-text
// affiliation. Exactly one of the two must be present.
type CommitteeMember struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"person_id"`
	Role         string    `json:"role"`
	DepartmentID *string   `json:"department_id"`
	Affiliation  string    `json:"affiliation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Person     *people.Person        `json:"person,omitempty"`
	Department *reference.Department `json:"department,omitempty"`
}

// List filter values mirroring the staff review queues.
const (
	StatusFilterAll                  = "all"
	StatusFilterInProgress           = "in_progress"
	StatusFilterAwaitingGradschool   = "awaiting_gradschool"
	StatusFilterDissertationRejected = "dissertation_rejected"
	StatusFilterPaperworkIncomplete  = "paperwork_incomplete"
	StatusFilterComplete             = "complete"
)

// Global field names for validation
const (
	FieldYear         = "year"
	FieldDepartmentID = "department_id"
	FieldDegreeID     = "degree_id"
	FieldRole         = "role"
	FieldAffiliation  = "affiliation"
)
