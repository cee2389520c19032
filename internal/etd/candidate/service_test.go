// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	candidate *Candidate
	added     []*CommitteeMember
	removed   []string
}

func (r *fakeRepository) Register(context.Context, *Candidate) error { return nil }
func (r *fakeRepository) GetCandidate(context.Context, string) (*Candidate, error) {
	return r.candidate, nil
}
func (r *fakeRepository) GetCandidateByNetID(context.Context, string) (*Candidate, error) {
	return r.candidate, nil
}
func (r *fakeRepository) ListCandidates(context.Context, string, string) ([]*Candidate, error) {
	return nil, nil
}
func (r *fakeRepository) UpdateCandidate(context.Context, *Candidate) error { return nil }
func (r *fakeRepository) AddCommitteeMember(_ context.Context, _ string, m *CommitteeMember) error {
	r.added = append(r.added, m)
	return nil
}
func (r *fakeRepository) RemoveCommitteeMember(_ context.Context, _, memberID string) error {
	r.removed = append(r.removed, memberID)
	return nil
}
func (r *fakeRepository) UpdateChecklist(context.Context, *GradschoolChecklist) error { return nil }

func newTestService(repo *fakeRepository) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, nil, nil, logger)
}

func candidateWithThesisStatus(status string) *Candidate {
	return &Candidate{
		ID:     "c1",
		Thesis: &ThesisSummary{ID: "t1", Status: status},
	}
}

func TestAddCommitteeMember_ThesisLock(t *testing.T) {
	input := CommitteeMemberInput{
		PersonID:    "p1",
		Role:        RoleReader,
		Affiliation: "Halewick University",
	}

	tests := []struct {
		status     string
		wantLocked bool
	}{
		{"not_submitted", false},
		{"rejected", false},
		{"pending", true},
		{"accepted", true},
		{"ingested", true},
		{"ingest_error", true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			repo := &fakeRepository{candidate: candidateWithThesisStatus(tt.status)}
			service := newTestService(repo)

			_, err := service.AddCommitteeMember(context.Background(), "c1", input)

			if tt.wantLocked {
				require.ErrorIs(t, err, ErrThesisLocked)
				assert.Empty(t, repo.added)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.added, 1)
			assert.Equal(t, "p1", repo.added[0].PersonID)
		})
	}
}

func TestRemoveCommitteeMember_RefusedWhileLocked(t *testing.T) {
	repo := &fakeRepository{candidate: candidateWithThesisStatus("accepted")}
	service := newTestService(repo)

	err := service.RemoveCommitteeMember(context.Background(), "c1", "m1")

	require.ErrorIs(t, err, ErrThesisLocked)
	assert.Empty(t, repo.removed)
}

func TestRemoveCommitteeMember_AllowedWhileOpen(t *testing.T) {
	repo := &fakeRepository{candidate: candidateWithThesisStatus("rejected")}
	service := newTestService(repo)

	require.NoError(t, service.RemoveCommitteeMember(context.Background(), "c1", "m1"))
	assert.Equal(t, []string{"m1"}, repo.removed)
}

func TestThesisSummary_IsLocked(t *testing.T) {
	assert.False(t, (&ThesisSummary{Status: "not_submitted"}).IsLocked())
	assert.False(t, (&ThesisSummary{Status: "rejected"}).IsLocked())
	assert.True(t, (&ThesisSummary{Status: "pending"}).IsLocked())
	assert.True(t, (&ThesisSummary{Status: "ingested"}).IsLocked())
}
