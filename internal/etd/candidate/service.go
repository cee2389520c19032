// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"context"
	"log/slog"
	"time"

	"github.com/etheca/etheca/internal/etd/notify"
	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/validate"
	"github.com/etheca/etheca/pkg/pagination"
	"github.com/etheca/etheca/pkg/pointer"
	"github.com/etheca/etheca/pkg/uuidv7"
)

// EmbargoYears is how long a requested embargo lasts past the
// graduation year.
const EmbargoYears = 2

// ErrThesisLocked refuses committee edits while the thesis is under
// review or deposited. Matches the thesis package's own edit lock.
var ErrThesisLocked = apperr.InvalidState("Thesis is under review and cannot be edited")

type Service struct {
	repo     Repository
	people   *people.Service
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewService(repo Repository, peopleService *people.Service, notifier *notify.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		people:   peopleService,
		notifier: notifier,
		logger:   logger,
	}
}

// RegisterInput is the candidate self-registration payload.
type RegisterInput struct {
	Year         int           `json:"year"`
	DepartmentID string        `json:"department_id"`
	DegreeID     string        `json:"degree_id"`
	Embargo      bool          `json:"embargo"`
	Person       people.Person `json:"person"`
}

/*
Register creates a candidacy for the authenticated netid.

The person record is found by netid or created from the submitted
profile. A candidacy requires both a netid and an email address: the
whole review loop communicates over email. Companion rows (thesis shell,
checklists) are created in the same transaction.
*/
func (service *Service) Register(context context.Context, netid string, input RegisterInput) (*Candidate, error) {
	validator := &validate.Validator{}
	validator.
		Year(FieldYear, input.Year).
		Required(FieldDepartmentID, input.DepartmentID).
		Required(FieldDegreeID, input.DegreeID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	person, err := service.people.GetPersonByNetID(context, netid)
	if apperr.IsNotFound(err) {
		input.Person.NetID = &netid
		if err := service.people.CreatePerson(context, &input.Person); err != nil {
			return nil, err
		}
		person = &input.Person
	} else if err != nil {
		return nil, err
	}

	if person.Email == nil || *person.Email == "" {
		return nil, apperr.ValidationError("Candidate must have an email address",
			apperr.FieldError{Field: people.FieldEmail, Message: "Required for candidates"})
	}

	c := &Candidate{
		ID:             uuidv7.New(),
		PersonID:       person.ID,
		DateRegistered: time.Now(),
		Year:           input.Year,
		DepartmentID:   input.DepartmentID,
		DegreeID:       input.DegreeID,
	}
	if input.Embargo {
		c.EmbargoEndYear = pointer.To(input.Year + EmbargoYears)
	}

	if err := service.repo.Register(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("candidate_registered",
		slog.String("candidate_id", c.ID),
		slog.Int("year", c.Year),
	)
	return service.repo.GetCandidate(context, c.ID)
}

func (service *Service) GetCandidate(context context.Context, id string) (*Candidate, error) {
	return service.repo.GetCandidate(context, id)
}

// GetCandidateByNetID loads the latest candidacy for the given login.
func (service *Service) GetCandidateByNetID(context context.Context, netid string) (*Candidate, error) {
	return service.repo.GetCandidateByNetID(context, netid)
}

/*
ListCandidates returns one page of the staff queue for a status filter.

The paperwork queues cannot be expressed as a thesis status alone: both
start from accepted theses and split on checklist completeness, which is
evaluated here. Because of that in-memory split, pagination also happens
here rather than in SQL.
*/
func (service *Service) ListCandidates(context context.Context, statusFilter, sortBy string, page pagination.Params) ([]*Candidate, pagination.Meta, error) {
	candidates, err := service.repo.ListCandidates(context, statusFilter, sortBy)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	switch statusFilter {
	case StatusFilterPaperworkIncomplete:
		candidates = filterByChecklist(candidates, false)
	case StatusFilterComplete:
		candidates = filterByChecklist(candidates, true)
	}

	meta := pagination.NewMeta(page.Page, page.Limit, len(candidates))
	start := page.Offset()
	if start > len(candidates) {
		start = len(candidates)
	}
	end := start + page.Limit
	if end > len(candidates) {
		end = len(candidates)
	}
	return candidates[start:end], meta, nil
}

func filterByChecklist(candidates []*Candidate, wantComplete bool) []*Candidate {
	filtered := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Checklist.Complete(c.Degree.DegreeType) == wantComplete {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// UpdateInput carries the editable candidacy fields.
type UpdateInput struct {
	Year         int    `json:"year"`
	DepartmentID string `json:"department_id"`
	DegreeID     string `json:"degree_id"`
	Embargo      bool   `json:"embargo"`
	// PrivateAccessEndDate is staff-set; candidates cannot restrict
	// access beyond the standard embargo.
	PrivateAccessEndDate *time.Time `json:"private_access_end_date"`
}

func (service *Service) UpdateCandidate(context context.Context, id string, input UpdateInput, staff bool) (*Candidate, error) {
	validator := &validate.Validator{}
	validator.
		Year(FieldYear, input.Year).
		Required(FieldDepartmentID, input.DepartmentID).
		Required(FieldDegreeID, input.DegreeID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c, err := service.repo.GetCandidate(context, id)
	if err != nil {
		return nil, err
	}

	c.Year = input.Year
	c.DepartmentID = input.DepartmentID
	c.DegreeID = input.DegreeID
	c.EmbargoEndYear = nil
	if input.Embargo {
		c.EmbargoEndYear = pointer.To(input.Year + EmbargoYears)
	}
	if staff {
		c.PrivateAccessEndDate = input.PrivateAccessEndDate
	}

	if err := service.repo.UpdateCandidate(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("candidate_updated", slog.String("candidate_id", c.ID))
	return service.repo.GetCandidate(context, id)
}

// CommitteeMemberInput describes a new committee member. Either an
// existing person id or an inline person record must be supplied, and
// either a department or an external affiliation.
type CommitteeMemberInput struct {
	PersonID     string        `json:"person_id"`
	Person       people.Person `json:"person"`
	Role         string        `json:"role"`
	DepartmentID *string       `json:"department_id"`
	Affiliation  string        `json:"affiliation"`
}

func (service *Service) AddCommitteeMember(context context.Context, candidateID string, input CommitteeMemberInput) (*Candidate, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldRole, input.Role, RoleReader, RoleAdvisor)
	validator.Custom(FieldAffiliation,
		input.DepartmentID == nil && input.Affiliation == "",
		"Either department or affiliation is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c, err := service.repo.GetCandidate(context, candidateID)
	if err != nil {
		return nil, err
	}
	if c.Thesis != nil && c.Thesis.IsLocked() {
		return nil, ErrThesisLocked
	}

	personID := input.PersonID
	if personID == "" {
		if err := service.people.CreatePerson(context, &input.Person); err != nil {
			return nil, err
		}
		personID = input.Person.ID
	}

	member := &CommitteeMember{
		ID:           uuidv7.New(),
		PersonID:     personID,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Affiliation:  input.Affiliation,
	}

	if err := service.repo.AddCommitteeMember(context, candidateID, member); err != nil {
		return nil, err
	}

	service.logger.Info("committee_member_added",
		slog.String("candidate_id", candidateID),
		slog.String("role", member.Role),
	)
	return service.repo.GetCandidate(context, candidateID)
}

func (service *Service) RemoveCommitteeMember(context context.Context, candidateID, memberID string) error {
	c, err := service.repo.GetCandidate(context, candidateID)
	if err != nil {
		return err
	}
	if c.Thesis != nil && c.Thesis.IsLocked() {
		return ErrThesisLocked
	}

	if err := service.repo.RemoveCommitteeMember(context, candidateID, memberID); err != nil {
		return err
	}

	service.logger.Info("committee_member_removed",
		slog.String("candidate_id", candidateID),
		slog.String("member_id", memberID),
	)
	return nil
}

/*
MarkChecklistItems stamps the named paperwork items as received now.

Each stamped item triggers a receipt notification to the candidate, and
if the stamp completes the checklist a final congratulation is sent.
*/
func (service *Service) MarkChecklistItems(context context.Context, candidateID string, fields []string) (*Candidate, error) {
	c, err := service.repo.GetCandidate(context, candidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var marked []string
	for _, field := range fields {
		if c.Checklist.markReceived(field, now) {
			marked = append(marked, field)
		}
	}
	if len(marked) == 0 {
		return c, nil
	}

	if err := service.repo.UpdateChecklist(context, c.Checklist); err != nil {
		return nil, err
	}

	recipient := service.notifyCandidate(c)
	for _, field := range marked {
		service.notifier.PaperworkReceived(context, recipient, field, now)
	}
	if c.Checklist.Complete(c.Degree.DegreeType) {
		service.notifier.Completed(context, recipient)
	}

	service.logger.Info("checklist_updated",
		slog.String("candidate_id", candidateID),
		slog.Any("fields", marked),
	)
	return c, nil
}

func (service *Service) notifyCandidate(c *Candidate) notify.Candidate {
	return notify.Candidate{
		ID:              c.ID,
		FirstName:       c.Person.FirstName,
		LastName:        c.Person.LastName,
		FormattedName:   c.Person.FormattedName(),
		Email:           pointer.Val(c.Person.Email),
		Title:           c.Thesis.Title,
		Label:           c.ThesisLabel(),
		FullLabel:       c.ThesisFullLabel(),
		DegreeAdjective: c.Degree.TypeAdjective(),
	}
}
