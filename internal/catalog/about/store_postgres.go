// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package about

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] backed by catalog.about_page
// and catalog.team_member.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetPage(ctx context.Context) (*Page, error) {
	t := schema.CatalogAboutPage
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		t.ID, t.Content, t.CreatedAt, t.UpdatedAt, t.Table, t.ID)

	page := &Page{}
	err := repository.db.QueryRow(ctx, query, aboutPageID).
		Scan(&page.ID, &page.Content, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_about_page")
	}

	if page.Team, err = repository.listTeam(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

func (repository *PostgresRepository) UpdateContent(ctx context.Context, content string) (*Page, error) {
	t := schema.CatalogAboutPage
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		t.Table, t.Content, t.UpdatedAt, t.ID)

	if _, err := repository.db.Exec(ctx, query, content, aboutPageID); err != nil {
		return nil, dberr.Wrap(err, "update_about_page")
	}
	return repository.GetPage(ctx)
}

func teamColumns() string {
	t := schema.CatalogTeamMember
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Profile, t.ImagePath, t.ThumbnailPath, t.SortOrder,
		t.CreatedAt, t.UpdatedAt)
}

func scanTeamMember(row interface{ Scan(dest ...any) error }) (*TeamMember, error) {
	member := &TeamMember{}
	err := row.Scan(
		&member.ID, &member.Name, &member.Profile, &member.ImagePath,
		&member.ThumbnailPath, &member.SortOrder, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (repository *PostgresRepository) listTeam(ctx context.Context) ([]TeamMember, error) {
	t := schema.CatalogTeamMember
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		teamColumns(), t.Table, t.AboutPageID, t.SortOrder, t.Name)

	rows, err := repository.db.Query(ctx, query, aboutPageID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	team := make([]TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_team_member")
		}
		team = append(team, *member)
	}
	return team, rows.Err()
}

func (repository *PostgresRepository) GetTeamMember(ctx context.Context, id int) (*TeamMember, error) {
	t := schema.CatalogTeamMember
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, teamColumns(), t.Table, t.ID)

	member, err := scanTeamMember(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_member")
	}
	return member, nil
}

func (repository *PostgresRepository) CreateTeamMember(ctx context.Context, member *TeamMember) error {
	t := schema.CatalogTeamMember
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING %s, %s, %s`,
		t.Table, t.AboutPageID, t.Name, t.Profile, t.ImagePath, t.ThumbnailPath, t.SortOrder,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		aboutPageID, member.Name, member.Profile, member.ImagePath,
		member.ThumbnailPath, member.SortOrder,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

func (repository *PostgresRepository) UpdateTeamMember(ctx context.Context, member *TeamMember) error {
	t := schema.CatalogTeamMember
	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
WHERE %s = $6
RETURNING %s`,
		t.Table, t.Name, t.Profile, t.ImagePath, t.ThumbnailPath, t.SortOrder, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		member.Name, member.Profile, member.ImagePath, member.ThumbnailPath,
		member.SortOrder, member.ID,
	).Scan(&member.UpdatedAt)
	return dberr.Wrap(err, "update_team_member")
}

func (repository *PostgresRepository) DeleteTeamMember(ctx context.Context, id int) (*TeamMember, error) {
	t := schema.CatalogTeamMember
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		t.Table, t.ID, teamColumns())

	member, err := scanTeamMember(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "delete_team_member")
	}
	return member, nil
}
