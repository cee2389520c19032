// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Duplicate Identity Mapping
//
// Person identifiers (netid, orcid, email, bannerid), keyword text, and the
// thesis repository pid all carry unique constraints. A raw SQLSTATE 23505
// is useless to callers, so this package inspects the violated constraint
// name and produces a field-specific [apperr.Duplicate] conflict.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/etheca/etheca/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// uniqueFields maps constraint-name fragments to the identity field that the
// conflict should be reported against. Checked in order; first match wins.
var uniqueFields = []string{
	"netid",
	"orcid",
	"bannerid",
	"email",
	"pid",
	"abbreviation",
	"search_text",
	"text",
	"name",
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique-constraint violations become field-specific conflicts
	if field, ok := DuplicateField(err); ok {
		return apperr.Duplicate(field)
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// DuplicateField extracts the offending identity field from a unique-violation
// error. It reports false for every other kind of error.
//
// Constraint names follow the migration convention <table>_<column>_key, so a
// substring match against the known unique columns is sufficient.
func DuplicateField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	if constraint == "" {
		// Fall back to the detail line ("Key (email)=(x) already exists.").
		constraint = strings.ToLower(pgErr.Detail)
	}

	for _, field := range uniqueFields {
		if strings.Contains(constraint, field) {
			return field, true
		}
	}

	return "record", true
}

// IsUniqueViolation reports whether err is any unique-constraint violation.
func IsUniqueViolation(err error) bool {
	_, ok := DuplicateField(err)
	return ok
}
