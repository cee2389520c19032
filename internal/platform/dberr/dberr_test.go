// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/platform/apperr"
	"github.com/etheca/etheca/internal/platform/dberr"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestDuplicateField(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantField  string
		wantUnique bool
	}{
		{"netid_constraint", uniqueViolation("person_netid_key"), "netid", true},
		{"orcid_constraint", uniqueViolation("person_orcid_key"), "orcid", true},
		{"email_constraint", uniqueViolation("person_email_key"), "email", true},
		{"bannerid_constraint", uniqueViolation("person_bannerid_key"), "bannerid", true},
		{"keyword_text", uniqueViolation("keyword_text_key"), "text", true},
		{"thesis_pid", uniqueViolation("thesis_pid_key"), "pid", true},
		{"unknown_constraint", uniqueViolation("mystery"), "record", true},
		{"not_unique_violation", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain_error", errors.New("boom"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := dberr.DuplicateField(tt.err)
			assert.Equal(t, tt.wantUnique, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestWrap_TranslatesUniqueViolation(t *testing.T) {
	err := dberr.Wrap(uniqueViolation("person_email_key"), "create person")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE_EMAIL", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "email", ae.Details[0].Field)
}

func TestWrap_PassesThroughNil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}
