// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] backed by catalog.person.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Person, error) {
	t := schema.CatalogPerson
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY COALESCE(NULLIF(%s, ''), %s) ASC`,
		t.ID, t.Fullname, t.CitationName, t.CreatedAt, t.UpdatedAt, t.Table,
		t.CitationName, t.Fullname,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_people")
	}
	defer rows.Close()

	people := make([]*Person, 0)
	for rows.Next() {
		p := &Person{}
		if err := rows.Scan(&p.ID, &p.Fullname, &p.CitationName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_person")
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Person, error) {
	t := schema.CatalogPerson
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Fullname, t.CitationName, t.CreatedAt, t.UpdatedAt, t.Table, t.ID,
	)

	p := &Person{}
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Fullname, &p.CitationName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, p *Person) error {
	t := schema.CatalogPerson
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s, %s`,
		t.Table, t.Fullname, t.CitationName, t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, p.Fullname, p.CitationName).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_person")
}

func (repository *PostgresRepository) Update(ctx context.Context, p *Person) error {
	t := schema.CatalogPerson
	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = $2, %s = NOW() WHERE %s = $3`,
		t.Table, t.Fullname, t.CitationName, t.UpdatedAt, t.ID,
	)

	result, err := repository.db.Exec(ctx, query, p.Fullname, p.CitationName, p.ID)
	if err != nil {
		return dberr.Wrap(err, "update_person")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	t := schema.CatalogPerson
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_person")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
