// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package thesis

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheca/etheca/internal/etd/keyword"
	"github.com/etheca/etheca/internal/etd/reference"
	"github.com/etheca/etheca/internal/platform/database/schema"
	"github.com/etheca/etheca/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const thesisSelect = `
	SELECT t.id, t.candidateid, t.filename, t.originalfilename, t.checksum,
	       t.title, t.abstract, t.languageid, t.numprelimpages, t.numbodypages,
	       t.status, t.datesubmitted, t.dateaccepted, t.daterejected, t.pid,
	       t.createdat, t.updatedat,
	       l.id, l.code, l.name
	FROM etd.thesis t
	LEFT JOIN etd.language l ON l.id = t.languageid
`

func scanThesis(row pgx.Row) (*Thesis, error) {
	t := &Thesis{}
	var langID, langCode, langName *string

	err := row.Scan(
		&t.ID, &t.CandidateID, &t.FileName, &t.OriginalFileName, &t.Checksum,
		&t.Title, &t.Abstract, &t.LanguageID, &t.NumPrelimPages, &t.NumBodyPages,
		&t.Status, &t.DateSubmitted, &t.DateAccepted, &t.DateRejected, &t.PID,
		&t.CreatedAt, &t.UpdatedAt,
		&langID, &langCode, &langName,
	)
	if err != nil {
		return nil, err
	}

	if langID != nil {
		t.Language = &reference.Language{ID: *langID, Code: *langCode, Name: *langName}
	}
	return t, nil
}

func (repository *PostgresRepository) GetThesis(context context.Context, id string) (*Thesis, error) {
	row := repository.db.QueryRow(context, thesisSelect+` WHERE t.id = $1`, id)
	t, err := scanThesis(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_thesis")
	}
	return t, repository.loadAssociations(context, t)
}

func (repository *PostgresRepository) GetThesisByCandidate(context context.Context, candidateID string) (*Thesis, error) {
	row := repository.db.QueryRow(context, thesisSelect+` WHERE t.candidateid = $1`, candidateID)
	t, err := scanThesis(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_thesis_by_candidate")
	}
	return t, repository.loadAssociations(context, t)
}

func (repository *PostgresRepository) loadAssociations(context context.Context, t *Thesis) error {
	if err := repository.loadKeywords(context, t); err != nil {
		return err
	}
	return repository.loadFormatChecklist(context, t)
}

func (repository *PostgresRepository) loadKeywords(context context.Context, t *Thesis) error {
	query := `
		SELECT k.id, k.text, k.searchtext, k.authority, k.authorityuri, k.valueuri
		FROM etd.thesiskeyword tk
		JOIN etd.keyword k ON k.id = tk.keywordid
		WHERE tk.thesisid = $1
		ORDER BY k.text ASC
	`

	rows, err := repository.db.Query(context, query, t.ID)
	if err != nil {
		return dberr.Wrap(err, "load_thesis_keywords")
	}
	defer rows.Close()

	for rows.Next() {
		k := &keyword.Keyword{}
		if err := rows.Scan(&k.ID, &k.Text, &k.SearchText, &k.Authority, &k.AuthorityURI, &k.ValueURI); err != nil {
			return dberr.Wrap(err, "scan_thesis_keyword")
		}
		t.Keywords = append(t.Keywords, k)
	}
	return nil
}

func (repository *PostgresRepository) loadFormatChecklist(context context.Context, t *Thesis) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.FormatChecklist.ID, schema.FormatChecklist.ThesisID,
		schema.FormatChecklist.TitlePageIssue, schema.FormatChecklist.TitlePageComment,
		schema.FormatChecklist.SignaturePageIssue, schema.FormatChecklist.SignaturePageComment,
		schema.FormatChecklist.FontIssue, schema.FormatChecklist.FontComment,
		schema.FormatChecklist.SpacingIssue, schema.FormatChecklist.SpacingComment,
		schema.FormatChecklist.MarginsIssue, schema.FormatChecklist.MarginsComment,
		schema.FormatChecklist.PaginationIssue, schema.FormatChecklist.PaginationComment,
		schema.FormatChecklist.FormatIssue, schema.FormatChecklist.FormatComment,
		schema.FormatChecklist.GraphsIssue, schema.FormatChecklist.GraphsComment,
		schema.FormatChecklist.DatingIssue, schema.FormatChecklist.DatingComment,
		schema.FormatChecklist.GeneralComments, schema.FormatChecklist.UpdatedAt,
		schema.FormatChecklist.Table, schema.FormatChecklist.ThesisID,
	)

	checklist := &FormatChecklist{}
	err := repository.db.QueryRow(context, query, t.ID).Scan(
		&checklist.ID, &checklist.ThesisID,
		&checklist.TitlePageIssue, &checklist.TitlePageComment,
		&checklist.SignaturePageIssue, &checklist.SignaturePageComment,
		&checklist.FontIssue, &checklist.FontComment,
		&checklist.SpacingIssue, &checklist.SpacingComment,
		&checklist.MarginsIssue, &checklist.MarginsComment,
		&checklist.PaginationIssue, &checklist.PaginationComment,
		&checklist.FormatIssue, &checklist.FormatComment,
		&checklist.GraphsIssue, &checklist.GraphsComment,
		&checklist.DatingIssue, &checklist.DatingComment,
		&checklist.GeneralComments, &checklist.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "load_format_checklist")
	}

	t.FormatChecklist = checklist
	return nil
}

func (repository *PostgresRepository) UpdateDocument(context context.Context, t *Thesis) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Thesis.Table,
		schema.Thesis.FileName, schema.Thesis.OriginalFileName, schema.Thesis.Checksum, schema.Thesis.UpdatedAt,
		schema.Thesis.ID,
		schema.Thesis.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, t.ID, t.FileName, t.OriginalFileName, t.Checksum).Scan(&t.UpdatedAt)
	return dberr.Wrap(err, "update_thesis_document")
}

func (repository *PostgresRepository) UpdateMetadata(context context.Context, t *Thesis) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_metadata_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Thesis.Table,
		schema.Thesis.Title, schema.Thesis.Abstract, schema.Thesis.LanguageID,
		schema.Thesis.NumPrelimPages, schema.Thesis.NumBodyPages, schema.Thesis.UpdatedAt,
		schema.Thesis.ID,
		schema.Thesis.UpdatedAt,
	)
	err = transaction.QueryRow(context, query,
		t.ID, t.Title, t.Abstract, t.LanguageID, t.NumPrelimPages, t.NumBodyPages,
	).Scan(&t.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_thesis_metadata")
	}

	// Replace the keyword links wholesale; the set is small.
	unlinkQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ThesisKeyword.Table, schema.ThesisKeyword.ThesisID,
	)
	if _, err := transaction.Exec(context, unlinkQuery, t.ID); err != nil {
		return dberr.Wrap(err, "unlink_thesis_keywords")
	}

	linkQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.ThesisKeyword.Table, schema.ThesisKeyword.ThesisID, schema.ThesisKeyword.KeywordID,
	)
	for _, kw := range t.Keywords {
		if _, err := transaction.Exec(context, linkQuery, t.ID, kw.ID); err != nil {
			return dberr.Wrap(err, "link_thesis_keyword")
		}
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, t *Thesis) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Thesis.Table,
		schema.Thesis.Status, schema.Thesis.DateSubmitted, schema.Thesis.DateAccepted,
		schema.Thesis.DateRejected, schema.Thesis.PID, schema.Thesis.UpdatedAt,
		schema.Thesis.ID,
		schema.Thesis.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		t.ID, t.Status, t.DateSubmitted, t.DateAccepted, t.DateRejected, t.PID,
	).Scan(&t.UpdatedAt)
	return dberr.Wrap(err, "update_thesis_status")
}

func (repository *PostgresRepository) UpdateFormatChecklist(context context.Context, checklist *FormatChecklist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10,
		    %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16, %s = $17, %s = $18, %s = $19,
		    %s = $20, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.FormatChecklist.Table,
		schema.FormatChecklist.TitlePageIssue, schema.FormatChecklist.TitlePageComment,
		schema.FormatChecklist.SignaturePageIssue, schema.FormatChecklist.SignaturePageComment,
		schema.FormatChecklist.FontIssue, schema.FormatChecklist.FontComment,
		schema.FormatChecklist.SpacingIssue, schema.FormatChecklist.SpacingComment,
		schema.FormatChecklist.MarginsIssue, schema.FormatChecklist.MarginsComment,
		schema.FormatChecklist.PaginationIssue, schema.FormatChecklist.PaginationComment,
		schema.FormatChecklist.FormatIssue, schema.FormatChecklist.FormatComment,
		schema.FormatChecklist.GraphsIssue, schema.FormatChecklist.GraphsComment,
		schema.FormatChecklist.DatingIssue, schema.FormatChecklist.DatingComment,
		schema.FormatChecklist.GeneralComments, schema.FormatChecklist.UpdatedAt,
		schema.FormatChecklist.ID,
		schema.FormatChecklist.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		checklist.ID,
		checklist.TitlePageIssue, checklist.TitlePageComment,
		checklist.SignaturePageIssue, checklist.SignaturePageComment,
		checklist.FontIssue, checklist.FontComment,
		checklist.SpacingIssue, checklist.SpacingComment,
		checklist.MarginsIssue, checklist.MarginsComment,
		checklist.PaginationIssue, checklist.PaginationComment,
		checklist.FormatIssue, checklist.FormatComment,
		checklist.GraphsIssue, checklist.GraphsComment,
		checklist.DatingIssue, checklist.DatingComment,
		checklist.GeneralComments,
	).Scan(&checklist.UpdatedAt)
	return dberr.Wrap(err, "update_format_checklist")
}
