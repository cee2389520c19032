// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import "context"

type Repository interface {
	GetThesis(context context.Context, id string) (*Thesis, error)
	GetThesisByCandidate(context context.Context, candidateID string) (*Thesis, error)

	// UpdateDocument persists the stored/original file names and checksum.
	UpdateDocument(context context.Context, t *Thesis) error
	// UpdateMetadata persists descriptive fields and replaces keyword links.
	UpdateMetadata(context context.Context, t *Thesis) error
	// UpdateStatus persists the lifecycle fields (status, decision
	// timestamps, pid).
	UpdateStatus(context context.Context, t *Thesis) error

	UpdateFormatChecklist(context context.Context, checklist *FormatChecklist) error
}
