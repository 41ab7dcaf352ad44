// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresCuratorRepository implements [CuratorRepository] backed by
// users.curator.
type PostgresCuratorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCuratorRepository(db *pgxpool.Pool) *PostgresCuratorRepository {
	return &PostgresCuratorRepository{db: db}
}

func curatorColumns() string {
	t := schema.UsersCurator
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.DisplayName, t.PasswordHash, t.Role, t.IsActive,
		t.CreatedAt, t.UpdatedAt)
}

func scanCurator(row interface{ Scan(dest ...any) error }) (*Curator, error) {
	curator := &Curator{}
	err := row.Scan(
		&curator.ID, &curator.Email, &curator.DisplayName, &curator.PasswordHash,
		&curator.Role, &curator.IsActive, &curator.CreatedAt, &curator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return curator, nil
}

func (repository *PostgresCuratorRepository) FindByEmail(ctx context.Context, email string) (*Curator, error) {
	t := schema.UsersCurator
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		curatorColumns(), t.Table, t.Email)

	curator, err := scanCurator(repository.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_curator_by_email")
	}
	return curator, nil
}

func (repository *PostgresCuratorRepository) FindByID(ctx context.Context, id string) (*Curator, error) {
	t := schema.UsersCurator
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		curatorColumns(), t.Table, t.ID)

	curator, err := scanCurator(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_curator_by_id")
	}
	return curator, nil
}

func (repository *PostgresCuratorRepository) Create(ctx context.Context, curator *Curator) error {
	t := schema.UsersCurator
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING %s, %s`,
		t.Table, t.ID, t.Email, t.DisplayName, t.PasswordHash, t.Role, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		curator.ID, curator.Email, curator.DisplayName, curator.PasswordHash,
		curator.Role, curator.IsActive,
	).Scan(&curator.CreatedAt, &curator.UpdatedAt)
	return dberr.Wrap(err, "create_curator")
}

func (repository *PostgresCuratorRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	t := schema.UsersCurator
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		t.Table, t.PasswordHash, t.UpdatedAt, t.ID)

	result, err := repository.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return dberr.Wrap(err, "update_curator_password")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
