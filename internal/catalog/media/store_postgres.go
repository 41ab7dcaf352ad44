// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
	"github.com/digital-mary/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] backed by catalog.image and
// catalog.remote_image.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func imageColumns() string {
	t := schema.CatalogImage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ItemID, t.Name, t.IsPublic, t.ImagePath, t.ImageWidth, t.ImageHeight,
		t.ThumbnailPath, t.Description, t.License, t.SortOrder, t.CreatedAt, t.UpdatedAt)
}

func scanImage(row interface{ Scan(dest ...any) error }) (*Image, error) {
	image := &Image{}
	err := row.Scan(
		&image.ID, &image.ItemID, &image.Name, &image.IsPublic, &image.ImagePath,
		&image.ImageWidth, &image.ImageHeight, &image.ThumbnailPath,
		&image.Description, &image.License, &image.SortOrder,
		&image.CreatedAt, &image.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return image, nil
}

func (repository *PostgresRepository) GetImage(ctx context.Context, id string) (*Image, error) {
	t := schema.CatalogImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, imageColumns(), t.Table, t.ID)

	image, err := scanImage(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_image")
	}
	return image, nil
}

func (repository *PostgresRepository) ListImages(ctx context.Context, itemID string) ([]*Image, error) {
	t := schema.CatalogImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		imageColumns(), t.Table, t.ItemID, t.SortOrder, t.CreatedAt)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_images")
	}
	defer rows.Close()

	images := make([]*Image, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_image")
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (repository *PostgresRepository) CreateImage(ctx context.Context, image *Image) error {
	t := schema.CatalogImage
	query := fmt.Sprintf(`INSERT INTO %s (
	%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING %s, %s`,
		t.Table,
		t.ID, t.ItemID, t.Name, t.IsPublic, t.ImagePath, t.ImageWidth, t.ImageHeight,
		t.ThumbnailPath, t.Description, t.License, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		image.ID, image.ItemID, image.Name, image.IsPublic, image.ImagePath,
		image.ImageWidth, image.ImageHeight, image.ThumbnailPath,
		image.Description, image.License, image.SortOrder,
	).Scan(&image.CreatedAt, &image.UpdatedAt)
	return dberr.Wrap(err, "create_image")
}

func (repository *PostgresRepository) UpdateImage(ctx context.Context, image *Image) error {
	t := schema.CatalogImage
	query := fmt.Sprintf(`UPDATE %s SET
	%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
	%s = NOW()
WHERE %s = $10
RETURNING %s`,
		t.Table,
		t.Name, t.IsPublic, t.ImagePath, t.ImageWidth, t.ImageHeight,
		t.ThumbnailPath, t.Description, t.License, t.SortOrder,
		t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		image.Name, image.IsPublic, image.ImagePath, image.ImageWidth, image.ImageHeight,
		image.ThumbnailPath, image.Description, image.License, image.SortOrder,
		image.ID,
	).Scan(&image.UpdatedAt)
	return dberr.Wrap(err, "update_image")
}

func (repository *PostgresRepository) DeleteImage(ctx context.Context, id string) (*Image, error) {
	t := schema.CatalogImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		t.Table, t.ID, imageColumns())

	image, err := scanImage(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "delete_image")
	}
	return image, nil
}

func remoteColumns() string {
	t := schema.CatalogRemoteImage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ItemID, t.Name, t.URL, t.Description, t.CreatedAt, t.UpdatedAt)
}

func scanRemoteImage(row interface{ Scan(dest ...any) error }) (*RemoteImage, error) {
	remote := &RemoteImage{}
	err := row.Scan(
		&remote.ID, &remote.ItemID, &remote.Name, &remote.URL,
		&remote.Description, &remote.CreatedAt, &remote.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return remote, nil
}

func (repository *PostgresRepository) GetRemoteImage(ctx context.Context, id string) (*RemoteImage, error) {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, remoteColumns(), t.Table, t.ID)

	remote, err := scanRemoteImage(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_remote_image")
	}
	return remote, nil
}

func (repository *PostgresRepository) ListRemoteImages(ctx context.Context, itemID string) ([]*RemoteImage, error) {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		remoteColumns(), t.Table, t.ItemID, t.CreatedAt)

	rows, err := repository.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_remote_images")
	}
	defer rows.Close()

	remotes := make([]*RemoteImage, 0)
	for rows.Next() {
		remote, err := scanRemoteImage(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_remote_image")
		}
		remotes = append(remotes, remote)
	}
	return remotes, rows.Err()
}

func (repository *PostgresRepository) CreateRemoteImage(ctx context.Context, remote *RemoteImage) error {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)
RETURNING %s, %s`,
		t.Table, t.ID, t.ItemID, t.Name, t.URL, t.Description,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		remote.ID, remote.ItemID, remote.Name, remote.URL, remote.Description,
	).Scan(&remote.CreatedAt, &remote.UpdatedAt)
	return dberr.Wrap(err, "create_remote_image")
}

func (repository *PostgresRepository) UpdateRemoteImage(ctx context.Context, remote *RemoteImage) error {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = NOW() WHERE %s = $4 RETURNING %s`,
		t.Table, t.Name, t.URL, t.Description, t.UpdatedAt, t.ID, t.UpdatedAt)

	err := repository.db.QueryRow(ctx, query,
		remote.Name, remote.URL, remote.Description, remote.ID,
	).Scan(&remote.UpdatedAt)
	return dberr.Wrap(err, "update_remote_image")
}

func (repository *PostgresRepository) DeleteRemoteImage(ctx context.Context, id string) error {
	t := schema.CatalogRemoteImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	result, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_remote_image")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ItemExists(ctx context.Context, itemID string) (bool, error) {
	t := schema.CatalogItem
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, t.Table, t.ID)

	exists := false
	if err := repository.db.QueryRow(ctx, query, itemID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "item_exists")
	}
	return exists, nil
}
