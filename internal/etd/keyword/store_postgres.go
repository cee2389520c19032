// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package keyword

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheca/etheca/internal/platform/database/schema"
	"github.com/etheca/etheca/internal/platform/dberr"
	"github.com/etheca/etheca/pkg/textnorm"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetKeyword(context context.Context, id string) (*Keyword, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Keyword.ID, schema.Keyword.Text, schema.Keyword.SearchText,
		schema.Keyword.Authority, schema.Keyword.AuthorityURI, schema.Keyword.ValueURI,
		schema.Keyword.Table, schema.Keyword.ID,
	)
	k := &Keyword{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&k.ID, &k.Text, &k.SearchText, &k.Authority, &k.AuthorityURI, &k.ValueURI,
	)

	return k, dberr.Wrap(err, "get_keyword")
}

func (repository *PostgresRepository) GetKeywordByText(context context.Context, text string) (*Keyword, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Keyword.ID, schema.Keyword.Text, schema.Keyword.SearchText,
		schema.Keyword.Authority, schema.Keyword.AuthorityURI, schema.Keyword.ValueURI,
		schema.Keyword.Table, schema.Keyword.Text,
	)
	k := &Keyword{}

	err := repository.db.QueryRow(context, query, text).Scan(
		&k.ID, &k.Text, &k.SearchText, &k.Authority, &k.AuthorityURI, &k.ValueURI,
	)

	return k, dberr.Wrap(err, "get_keyword_by_text")
}

func (repository *PostgresRepository) CreateKeyword(context context.Context, k *Keyword) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		schema.Keyword.Table,
		schema.Keyword.ID, schema.Keyword.Text, schema.Keyword.SearchText,
		schema.Keyword.Authority, schema.Keyword.AuthorityURI, schema.Keyword.ValueURI,
	)

	_, err := repository.db.Exec(context, query, k.ID, k.Text, k.SearchText, k.Authority, k.AuthorityURI, k.ValueURI)
	return dberr.Wrap(err, "create_keyword")
}

// orderColumns whitelists the sortable columns for keyword search.
var orderColumns = map[string]string{
	"text":       schema.Keyword.Text,
	"searchtext": schema.Keyword.SearchText,
}

func (repository *PostgresRepository) SearchKeywords(context context.Context, term string, order string) ([]*Keyword, error) {
	// Fuzzy search: match the exact form or the accent-stripped form.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s ILIKE $1 OR %s ILIKE $1
	`,
		schema.Keyword.ID, schema.Keyword.Text, schema.Keyword.SearchText,
		schema.Keyword.Authority, schema.Keyword.AuthorityURI, schema.Keyword.ValueURI,
		schema.Keyword.Table, schema.Keyword.Text, schema.Keyword.SearchText,
	)

	if orderColumn, ok := orderColumns[order]; ok {
		query += fmt.Sprintf(" ORDER BY %s ASC", orderColumn)
	}

	searchTerm := "%" + textnorm.Normalize(term) + "%"
	rows, err := repository.db.Query(context, query, searchTerm)
	if err != nil {
		return nil, dberr.Wrap(err, "search_keywords")
	}
	defer rows.Close()

	var keywords []*Keyword
	for rows.Next() {
		k := &Keyword{}
		if err := rows.Scan(&k.ID, &k.Text, &k.SearchText, &k.Authority, &k.AuthorityURI, &k.ValueURI); err != nil {
			return nil, dberr.Wrap(err, "scan_keyword")
		}
		keywords = append(keywords, k)
	}

	return keywords, nil
}
