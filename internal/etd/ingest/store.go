// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package ingest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheca/etheca/internal/etd/thesis"
	"github.com/etheca/etheca/internal/platform/database/schema"
	"github.com/etheca/etheca/internal/platform/dberr"
)

type Repository interface {
	// ListAcceptedThesisIDs returns the ids of format-accepted theses
	// ordered by title. Acceptance is only the coarse filter: full
	// deposit eligibility also depends on the candidate's paperwork and
	// graduation year, which the service evaluates per thesis.
	ListAcceptedThesisIDs(context context.Context) ([]string, error)
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAcceptedThesisIDs(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Thesis.ID, schema.Thesis.Table, schema.Thesis.Status, schema.Thesis.Title,
	)

	rows, err := repository.db.Query(context, query, thesis.StatusAccepted)
	if err != nil {
		return nil, dberr.Wrap(err, "list_accepted_theses")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_accepted_thesis")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
