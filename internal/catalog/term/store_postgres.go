// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] for all vocabularies at once.
// The Kind parameter selects the physical table; the column set is identical
// apart from the alias/geo extensions.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns builds the SELECT list for a kind. Alias and geo columns are
// selected as typed NULLs on vocabularies that lack them so that one scan
// path serves every table.
func selectColumns(kind Kind) string {
	t := kind.Table()

	cols := []string{
		t.ID, t.Label, t.LabelAr, t.Description, t.DescriptionAr, t.Slug,
		t.CreatedAt, t.UpdatedAt,
	}

	if kind.HasAliases() {
		cols = append(cols, schema.TermAlternateNames)
	} else {
		cols = append(cols, "NULL::text[] AS "+schema.TermAlternateNames)
	}

	if kind.HasGeo() {
		cols = append(cols, schema.TermGeonameID, schema.TermLatitude, schema.TermLongitude, schema.TermCountry)
	} else {
		cols = append(cols,
			"NULL::int AS "+schema.TermGeonameID,
			"NULL::float8 AS "+schema.TermLatitude,
			"NULL::float8 AS "+schema.TermLongitude,
			"NULL::text AS "+schema.TermCountry,
		)
	}

	return strings.Join(cols, ", ")
}

// scanTerm reads one row produced by [selectColumns].
func scanTerm(row interface{ Scan(dest ...any) error }) (*Term, error) {
	t := &Term{}
	err := row.Scan(
		&t.ID, &t.Label, &t.LabelAr, &t.Description, &t.DescriptionAr, &t.Slug,
		&t.CreatedAt, &t.UpdatedAt,
		&t.AlternateNames,
		&t.GeonameID, &t.Latitude, &t.Longitude, &t.Country,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (repository *PostgresRepository) List(ctx context.Context, kind Kind) ([]*Term, error) {
	t := kind.Table()
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, selectColumns(kind), t.Table, t.Label)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_terms")
	}
	defer rows.Close()

	terms := make([]*Term, 0)
	for rows.Next() {
		term, err := scanTerm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_term")
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

func (repository *PostgresRepository) Get(ctx context.Context, kind Kind, id int) (*Term, error) {
	t := kind.Table()
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns(kind), t.Table, t.ID)

	term, err := scanTerm(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_term")
	}
	return term, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, kind Kind, term *Term) error {
	t := kind.Table()

	cols := []string{t.Label, t.LabelAr, t.Description, t.DescriptionAr, t.Slug}
	args := []any{term.Label, term.LabelAr, term.Description, term.DescriptionAr, term.Slug}

	if kind.HasAliases() {
		cols = append(cols, schema.TermAlternateNames)
		args = append(args, aliasesOrEmpty(term.AlternateNames))
	}
	if kind.HasGeo() {
		cols = append(cols, schema.TermGeonameID, schema.TermLatitude, schema.TermLongitude, schema.TermCountry)
		args = append(args, term.GeonameID, term.Latitude, term.Longitude, term.Country)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s, %s`,
		t.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, args...).Scan(&term.ID, &term.CreatedAt, &term.UpdatedAt)
	return dberr.Wrap(err, "create_term")
}

func (repository *PostgresRepository) Update(ctx context.Context, kind Kind, term *Term) error {
	t := kind.Table()

	assignments := []string{
		fmt.Sprintf("%s = $1", t.Label),
		fmt.Sprintf("%s = $2", t.LabelAr),
		fmt.Sprintf("%s = $3", t.Description),
		fmt.Sprintf("%s = $4", t.DescriptionAr),
		fmt.Sprintf("%s = $5", t.Slug),
		fmt.Sprintf("%s = NOW()", t.UpdatedAt),
	}
	args := []any{term.Label, term.LabelAr, term.Description, term.DescriptionAr, term.Slug}
	argID := 6

	if kind.HasAliases() {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", schema.TermAlternateNames, argID))
		args = append(args, aliasesOrEmpty(term.AlternateNames))
		argID++
	}
	if kind.HasGeo() {
		assignments = append(assignments,
			fmt.Sprintf("%s = $%d", schema.TermGeonameID, argID),
			fmt.Sprintf("%s = $%d", schema.TermLatitude, argID+1),
			fmt.Sprintf("%s = $%d", schema.TermLongitude, argID+2),
			fmt.Sprintf("%s = $%d", schema.TermCountry, argID+3),
		)
		args = append(args, term.GeonameID, term.Latitude, term.Longitude, term.Country)
		argID += 4
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		t.Table, strings.Join(assignments, ", "), t.ID, argID)
	args = append(args, term.ID)

	result, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_term")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, kind Kind, id int) error {
	t := kind.Table()
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_term")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// aliasesOrEmpty keeps the text[] column NOT NULL friendly: a nil slice is
// stored as an empty array, matching the column default.
func aliasesOrEmpty(aliases []string) []string {
	if aliases == nil {
		return []string{}
	}
	return aliases
}
