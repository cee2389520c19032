// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package candidate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheca/etheca/internal/etd/people"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/platform/database/schema"
	"github.com/etheca/etheca/internal/platform/dberr"
	"github.com/etheca/etheca/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Register(context context.Context, c *Candidate) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_register_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: The candidacy itself.
	candidateQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Candidate.Table,
		schema.Candidate.ID, schema.Candidate.PersonID, schema.Candidate.DateRegistered, schema.Candidate.Year,
		schema.Candidate.DepartmentID, schema.Candidate.DegreeID, schema.Candidate.EmbargoEndYear,
		schema.Candidate.PrivateAccessEndDate, schema.Candidate.CreatedAt, schema.Candidate.UpdatedAt,
		schema.Candidate.DateRegistered, schema.Candidate.CreatedAt, schema.Candidate.UpdatedAt,
	)
	err = transaction.QueryRow(context, candidateQuery,
		c.ID, c.PersonID, c.DateRegistered, c.Year, c.DepartmentID, c.DegreeID,
		c.EmbargoEndYear, c.PrivateAccessEndDate,
	).Scan(&c.DateRegistered, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "insert_candidate")
	}

	// Step 2: Blank paperwork checklist.
	checklistQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.GradschoolChecklist.Table, schema.GradschoolChecklist.ID, schema.GradschoolChecklist.CandidateID,
	)
	if _, err := transaction.Exec(context, checklistQuery, uuidv7.New(), c.ID); err != nil {
		return dberr.Wrap(err, "insert_checklist")
	}

	// Step 3: Not-yet-submitted thesis shell.
	thesisQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.Thesis.Table, schema.Thesis.ID, schema.Thesis.CandidateID,
	)
	thesisID := uuidv7.New()
	if _, err := transaction.Exec(context, thesisQuery, thesisID, c.ID); err != nil {
		return dberr.Wrap(err, "insert_thesis_shell")
	}

	// Step 4: Format checklist attached to the shell.
	formatQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.FormatChecklist.Table, schema.FormatChecklist.ID, schema.FormatChecklist.ThesisID,
	)
	if _, err := transaction.Exec(context, formatQuery, uuidv7.New(), thesisID); err != nil {
		return dberr.Wrap(err, "insert_format_checklist")
	}

	return transaction.Commit(context)
}

// candidateSelect joins every table a loaded candidate view needs.
const candidateSelect = `
	SELECT c.id, c.personid, c.dateregistered, c.year, c.departmentid, c.degreeid,
	       c.embargoendyear, c.privateaccessenddate, c.createdat, c.updatedat,
	       p.id, p.netid, p.orcid, p.bannerid, p.lastname, p.firstname, p.middle, p.email,
	       dg.id, dg.abbreviation, dg.name, dg.degreetype,
	       dp.id, dp.name, dp.collectionid,
	       t.id, t.title, t.status, t.datesubmitted,
	       gc.id, gc.candidateid, gc.dissertationfee, gc.bursarreceipt, gc.exitsurvey, gc.earneddocs, gc.pagessubmitted
	FROM etd.candidate c
	JOIN etd.person p ON p.id = c.personid
	JOIN etd.degree dg ON dg.id = c.degreeid
	JOIN etd.department dp ON dp.id = c.departmentid
	JOIN etd.thesis t ON t.candidateid = c.id
	JOIN etd.gradschoolchecklist gc ON gc.candidateid = c.id
`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	c := &Candidate{
		Person:     &people.Person{},
		Degree:     &reference.Degree{},
		Department: &reference.Department{},
		Thesis:     &ThesisSummary{},
		Checklist:  &GradschoolChecklist{},
	}

	err := row.Scan(
		&c.ID, &c.PersonID, &c.DateRegistered, &c.Year, &c.DepartmentID, &c.DegreeID,
		&c.EmbargoEndYear, &c.PrivateAccessEndDate, &c.CreatedAt, &c.UpdatedAt,
		&c.Person.ID, &c.Person.NetID, &c.Person.Orcid, &c.Person.BannerID,
		&c.Person.LastName, &c.Person.FirstName, &c.Person.Middle, &c.Person.Email,
		&c.Degree.ID, &c.Degree.Abbreviation, &c.Degree.Name, &c.Degree.DegreeType,
		&c.Department.ID, &c.Department.Name, &c.Department.CollectionID,
		&c.Thesis.ID, &c.Thesis.Title, &c.Thesis.Status, &c.Thesis.DateSubmitted,
		&c.Checklist.ID, &c.Checklist.CandidateID, &c.Checklist.DissertationFee, &c.Checklist.BursarReceipt,
		&c.Checklist.ExitSurvey, &c.Checklist.EarnedDocs, &c.Checklist.PagesSubmitted,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) GetCandidate(context context.Context, id string) (*Candidate, error) {
	row := repository.db.QueryRow(context, candidateSelect+` WHERE c.id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_candidate")
	}

	if err := repository.loadCommittee(context, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) GetCandidateByNetID(context context.Context, netid string) (*Candidate, error) {
	row := repository.db.QueryRow(context, candidateSelect+` WHERE p.netid = $1 ORDER BY c.createdat DESC LIMIT 1`, netid)
	c, err := scanCandidate(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_candidate_by_netid")
	}

	if err := repository.loadCommittee(context, c); err != nil {
		return nil, err
	}
	return c, nil
}

// statusFilters maps the staff queue names to thesis statuses. The two
// checklist-derived queues both start from accepted theses; the service
// layer splits them on checklist completeness.
var statusFilters = map[string]string{
	StatusFilterInProgress:           "not_submitted",
	StatusFilterAwaitingGradschool:   "pending",
	StatusFilterDissertationRejected: "rejected",
	StatusFilterPaperworkIncomplete:  "accepted",
	StatusFilterComplete:             "accepted",
}

// sortColumns whitelists staff-list sort keys.
var sortColumns = map[string]string{
	"last_name":       "p.lastname",
	"title":           "t.title",
	"date_registered": "c.dateregistered",
	"date_submitted":  "t.datesubmitted",
	"department":      "dp.name",
	"status":          "t.status",
}

func (repository *PostgresRepository) ListCandidates(context context.Context, statusFilter, sortBy string) ([]*Candidate, error) {
	query := candidateSelect

	args := []any{}
	if status, ok := statusFilters[statusFilter]; ok {
		query += ` WHERE t.status = $1`
		args = append(args, status)
	}

	orderColumn, ok := sortColumns[sortBy]
	if !ok {
		orderColumn = sortColumns["last_name"]
	}
	query += fmt.Sprintf(` ORDER BY %s ASC`, orderColumn)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_candidates")
	}
	defer rows.Close()

	var candidates []*Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_candidate")
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

func (repository *PostgresRepository) UpdateCandidate(context context.Context, c *Candidate) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Candidate.Table,
		schema.Candidate.Year, schema.Candidate.DepartmentID, schema.Candidate.DegreeID,
		schema.Candidate.EmbargoEndYear, schema.Candidate.PrivateAccessEndDate, schema.Candidate.UpdatedAt,
		schema.Candidate.ID,
		schema.Candidate.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Year, c.DepartmentID, c.DegreeID, c.EmbargoEndYear, c.PrivateAccessEndDate,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_candidate")
}

func (repository *PostgresRepository) loadCommittee(context context.Context, c *Candidate) error {
	query := `
		SELECT m.id, m.personid, m.role, m.departmentid, m.affiliation, m.createdat, m.updatedat,
		       p.id, p.netid, p.orcid, p.bannerid, p.lastname, p.firstname, p.middle, p.email,
		       dp.id, dp.name, dp.collectionid
		FROM etd.candidatecommittee cc
		JOIN etd.committeemember m ON m.id = cc.committeememberid
		JOIN etd.person p ON p.id = m.personid
		LEFT JOIN etd.department dp ON dp.id = m.departmentid
		WHERE cc.candidateid = $1
		ORDER BY m.createdat ASC
	`

	rows, err := repository.db.Query(context, query, c.ID)
	if err != nil {
		return dberr.Wrap(err, "load_committee")
	}
	defer rows.Close()

	for rows.Next() {
		m := &CommitteeMember{Person: &people.Person{}}
		var deptID, deptName, deptCollection *string
		err := rows.Scan(
			&m.ID, &m.PersonID, &m.Role, &m.DepartmentID, &m.Affiliation, &m.CreatedAt, &m.UpdatedAt,
			&m.Person.ID, &m.Person.NetID, &m.Person.Orcid, &m.Person.BannerID,
			&m.Person.LastName, &m.Person.FirstName, &m.Person.Middle, &m.Person.Email,
			&deptID, &deptName, &deptCollection,
		)
		if err != nil {
			return dberr.Wrap(err, "scan_committee_member")
		}
		if deptID != nil {
			m.Department = &reference.Department{ID: *deptID, Name: *deptName, CollectionID: deptCollection}
		}
		c.Committee = append(c.Committee, m)
	}

	return nil
}

func (repository *PostgresRepository) AddCommitteeMember(context context.Context, candidateID string, m *CommitteeMember) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_committee_tx")
	}
	defer transaction.Rollback(context)

	memberQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CommitteeMember.Table,
		schema.CommitteeMember.ID, schema.CommitteeMember.PersonID, schema.CommitteeMember.Role,
		schema.CommitteeMember.DepartmentID, schema.CommitteeMember.Affiliation,
		schema.CommitteeMember.CreatedAt, schema.CommitteeMember.UpdatedAt,
		schema.CommitteeMember.CreatedAt, schema.CommitteeMember.UpdatedAt,
	)
	err = transaction.QueryRow(context, memberQuery, m.ID, m.PersonID, m.Role, m.DepartmentID, m.Affiliation).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "insert_committee_member")
	}

	joinQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.CandidateCommittee.Table, schema.CandidateCommittee.CandidateID, schema.CandidateCommittee.CommitteeMemberID,
	)
	if _, err := transaction.Exec(context, joinQuery, candidateID, m.ID); err != nil {
		return dberr.Wrap(err, "insert_committee_link")
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) RemoveCommitteeMember(context context.Context, candidateID, memberID string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_committee_remove_tx")
	}
	defer transaction.Rollback(context)

	unlinkQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CandidateCommittee.Table, schema.CandidateCommittee.CandidateID, schema.CandidateCommittee.CommitteeMemberID,
	)
	result, err := transaction.Exec(context, unlinkQuery, candidateID, memberID)
	if err != nil {
		return dberr.Wrap(err, "delete_committee_link")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	memberQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CommitteeMember.Table, schema.CommitteeMember.ID,
	)
	if _, err := transaction.Exec(context, memberQuery, memberID); err != nil {
		return dberr.Wrap(err, "delete_committee_member")
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) UpdateChecklist(context context.Context, checklist *GradschoolChecklist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.GradschoolChecklist.Table,
		schema.GradschoolChecklist.DissertationFee, schema.GradschoolChecklist.BursarReceipt,
		schema.GradschoolChecklist.ExitSurvey, schema.GradschoolChecklist.EarnedDocs,
		schema.GradschoolChecklist.PagesSubmitted,
		schema.GradschoolChecklist.ID,
	)

	result, err := repository.db.Exec(context, query,
		checklist.ID, checklist.DissertationFee, checklist.BursarReceipt,
		checklist.ExitSurvey, checklist.EarnedDocs, checklist.PagesSubmitted,
	)
	if err != nil {
		return dberr.Wrap(err, "update_checklist")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
