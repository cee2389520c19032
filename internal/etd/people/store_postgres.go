// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package people

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheca/etheca/internal/platform/database/schema"
	"github.com/etheca/etheca/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetPerson(context context.Context, id string) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Person.ID, schema.Person.NetID, schema.Person.Orcid, schema.Person.BannerID,
		schema.Person.LastName, schema.Person.FirstName, schema.Person.Middle, schema.Person.Email,
		schema.Person.CreatedAt, schema.Person.UpdatedAt,
		schema.Person.Table, schema.Person.ID,
	)
	p := &Person{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.NetID, &p.Orcid, &p.BannerID, &p.LastName, &p.FirstName, &p.Middle, &p.Email,
		&p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_person")
}

func (repository *PostgresRepository) GetPersonByNetID(context context.Context, netid string) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Person.ID, schema.Person.NetID, schema.Person.Orcid, schema.Person.BannerID,
		schema.Person.LastName, schema.Person.FirstName, schema.Person.Middle, schema.Person.Email,
		schema.Person.CreatedAt, schema.Person.UpdatedAt,
		schema.Person.Table, schema.Person.NetID,
	)
	p := &Person{}

	err := repository.db.QueryRow(context, query, netid).Scan(
		&p.ID, &p.NetID, &p.Orcid, &p.BannerID, &p.LastName, &p.FirstName, &p.Middle, &p.Email,
		&p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_person_by_netid")
}

func (repository *PostgresRepository) CreatePerson(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Person.Table,
		schema.Person.ID, schema.Person.NetID, schema.Person.Orcid, schema.Person.BannerID,
		schema.Person.LastName, schema.Person.FirstName, schema.Person.Middle, schema.Person.Email,
		schema.Person.CreatedAt, schema.Person.UpdatedAt,
		schema.Person.CreatedAt, schema.Person.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.NetID, p.Orcid, p.BannerID, p.LastName, p.FirstName, p.Middle, p.Email,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_person")
}

func (repository *PostgresRepository) UpdatePerson(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Person.Table,
		schema.Person.NetID, schema.Person.Orcid, schema.Person.BannerID,
		schema.Person.LastName, schema.Person.FirstName, schema.Person.Middle, schema.Person.Email,
		schema.Person.UpdatedAt,
		schema.Person.ID,
		schema.Person.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.NetID, p.Orcid, p.BannerID, p.LastName, p.FirstName, p.Middle, p.Email,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_person")
}
