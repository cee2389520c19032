// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package reference

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

func (repository *PostgresRepository) ListDegrees(context context.Context) ([]*Degree, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Degree.ID, schema.Degree.Abbreviation, schema.Degree.Name, schema.Degree.DegreeType,
		schema.Degree.Table, schema.Degree.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_degrees")
	}
	defer rows.Close()

	var degrees []*Degree
	for rows.Next() {
		d := &Degree{}
		if err := rows.Scan(&d.ID, &d.Abbreviation, &d.Name, &d.DegreeType); err != nil {
			return nil, dberr.Wrap(err, "scan_degree")
		}
		degrees = append(degrees, d)
	}

	return degrees, nil
}

func (repository *PostgresRepository) GetDegree(context context.Context, id string) (*Degree, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Degree.ID, schema.Degree.Abbreviation, schema.Degree.Name, schema.Degree.DegreeType,
		schema.Degree.Table, schema.Degree.ID,
	)
	d := &Degree{}

	err := repository.db.QueryRow(context, query, id).Scan(&d.ID, &d.Abbreviation, &d.Name, &d.DegreeType)

	return d, dberr.Wrap(err, "get_degree")
}

func (repository *PostgresRepository) CreateDegree(context context.Context, d *Degree) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
	`,
		schema.Degree.Table, schema.Degree.ID, schema.Degree.Abbreviation, schema.Degree.Name, schema.Degree.DegreeType,
	)

	_, err := repository.db.Exec(context, query, d.ID, d.Abbreviation, d.Name, d.DegreeType)
	return dberr.Wrap(err, "create_degree")
}

func (repository *PostgresRepository) ListDepartments(context context.Context) ([]*Department, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Department.ID, schema.Department.Name, schema.Department.CollectionID,
		schema.Department.Table, schema.Department.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_departments")
	}
	defer rows.Close()

	var departments []*Department
	for rows.Next() {
		d := &Department{}
		if err := rows.Scan(&d.ID, &d.Name, &d.CollectionID); err != nil {
			return nil, dberr.Wrap(err, "scan_department")
		}
		departments = append(departments, d)
	}

	return departments, nil
}

func (repository *PostgresRepository) GetDepartment(context context.Context, id string) (*Department, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Department.ID, schema.Department.Name, schema.Department.CollectionID,
		schema.Department.Table, schema.Department.ID,
	)
	d := &Department{}

	err := repository.db.QueryRow(context, query, id).Scan(&d.ID, &d.Name, &d.CollectionID)

	return d, dberr.Wrap(err, "get_department")
}

func (repository *PostgresRepository) CreateDepartment(context context.Context, d *Department) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
	`,
		schema.Department.Table, schema.Department.ID, schema.Department.Name, schema.Department.CollectionID,
	)

	_, err := repository.db.Exec(context, query, d.ID, d.Name, d.CollectionID)
	return dberr.Wrap(err, "create_department")
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Language.ID, schema.Language.Code, schema.Language.Name,
		schema.Language.Table, schema.Language.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var languages []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		languages = append(languages, l)
	}

	return languages, nil
}

func (repository *PostgresRepository) GetLanguageByName(context context.Context, name string) (*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Language.ID, schema.Language.Code, schema.Language.Name,
		schema.Language.Table, schema.Language.Name,
	)
	l := &Language{}

	err := repository.db.QueryRow(context, query, name).Scan(&l.ID, &l.Code, &l.Name)

	return l, dberr.Wrap(err, "get_language_by_name")
}
