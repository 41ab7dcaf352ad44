// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package challenge

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] backed by catalog.challenge.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(ctx context.Context, c *Challenge) error {
	t := schema.CatalogChallenge
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING %s, %s`,
		t.Table, t.ID, t.ItemID, t.Fullname, t.Email, t.Message, t.Archive,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		c.ID, c.ItemID, c.Fullname, c.Email, c.Message, c.Archive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_challenge")
}

func (repository *PostgresRepository) List(ctx context.Context, archived *bool) ([]*Challenge, error) {
	t := schema.CatalogChallenge
	item := schema.CatalogItem

	filter := ""
	args := []any{}
	if archived != nil {
		filter = fmt.Sprintf(" WHERE c.%s = $1", t.Archive)
		args = append(args, *archived)
	}

	query := fmt.Sprintf(
		`SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, i.%s
FROM %s c
JOIN %s i ON i.%s = c.%s%s
ORDER BY c.%s DESC`,
		t.ID, t.ItemID, t.Fullname, t.Email, t.Message, t.Archive, t.CreatedAt, t.UpdatedAt, item.Name,
		t.Table, item.Table, item.ID, t.ItemID, filter,
		t.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_challenges")
	}
	defer rows.Close()

	challenges := make([]*Challenge, 0)
	for rows.Next() {
		c := &Challenge{}
		err := rows.Scan(
			&c.ID, &c.ItemID, &c.Fullname, &c.Email, &c.Message, &c.Archive,
			&c.CreatedAt, &c.UpdatedAt, &c.ItemName,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_challenge")
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

func (repository *PostgresRepository) SetArchived(ctx context.Context, ids []string, archived bool) error {
	if len(ids) == 0 {
		return nil
	}

	t := schema.CatalogChallenge
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = ANY($2)`,
		t.Table, t.Archive, t.UpdatedAt, t.ID)

	_, err := repository.db.Exec(ctx, query, archived, ids)
	return dberr.Wrap(err, "archive_challenges")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.CatalogChallenge
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_challenge")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) PublicItemName(ctx context.Context, itemID string) (string, bool, error) {
	t := schema.CatalogItem
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE`,
		t.Name, t.Table, t.ID, t.IsPublic)

	name := ""
	err := repository.db.QueryRow(ctx, query, itemID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, dberr.Wrap(err, "lookup_challenge_item")
	}
	return name, true, nil
}
