// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import "context"

type Repository interface {
	// Register creates the candidate and its companion rows (blank
	// checklist, not-submitted thesis shell) in one transaction.
	Register(context context.Context, c *Candidate) error

	GetCandidate(context context.Context, id string) (*Candidate, error)
	GetCandidateByNetID(context context.Context, netid string) (*Candidate, error)
	ListCandidates(context context.Context, statusFilter, sortBy string) ([]*Candidate, error)
	UpdateCandidate(context context.Context, c *Candidate) error

	AddCommitteeMember(context context.Context, candidateID string, m *CommitteeMember) error
	RemoveCommitteeMember(context context.Context, candidateID, memberID string) error

	UpdateChecklist(context context.Context, checklist *GradschoolChecklist) error
}
