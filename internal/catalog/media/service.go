// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"context"
	"io"
	"log/slog"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/uuidv7"
)

// Service carries the image attachment business logic: upload decoding,
// thumbnail generation, file placement, and record bookkeeping.
type Service struct {
	repo    Repository
	storage *Storage
	logger  *slog.Logger
}

func NewService(repo Repository, storage *Storage, logger *slog.Logger) *Service {
	return &Service{repo: repo, storage: storage, logger: logger}
}

// UploadInput is the multipart upload unpacked by the handler.
type UploadInput struct {
	Name        string
	IsPublic    bool
	Description *string
	License     *string
	SortOrder   int
	File        io.Reader
}

// Upload decodes the file, stores the original and a generated thumbnail,
// and inserts the image record. The thumbnail exists before the record does,
// so a listed image always has one.
func (service *Service) Upload(ctx context.Context, itemID string, input UploadInput) (*Image, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 255)
	if err := v.Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.ItemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Item")
	}

	decoded, format, raw, err := DecodeUpload(input.File)
	if err != nil {
		return nil, err
	}

	id := uuidv7.New()

	imagePath, err := service.storage.SaveOriginal(constants.MediaImageDir, id, format, raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	thumbnailPath, err := service.storage.SaveThumbnail(
		constants.MediaThumbnailDir, id, decoded,
		constants.ItemThumbnailWidth, constants.ItemThumbnailHeight,
	)
	if err != nil {
		service.cleanupFiles(ctx, imagePath)
		return nil, apperr.Internal(err)
	}

	bounds := decoded.Bounds()
	image := &Image{
		ID:            id,
		ItemID:        itemID,
		Name:          input.Name,
		IsPublic:      input.IsPublic,
		ImagePath:     imagePath,
		ImageWidth:    bounds.Dx(),
		ImageHeight:   bounds.Dy(),
		ThumbnailPath: thumbnailPath,
		Description:   input.Description,
		License:       input.License,
		SortOrder:     input.SortOrder,
	}

	if err := service.repo.CreateImage(ctx, image); err != nil {
		service.cleanupFiles(ctx, imagePath, thumbnailPath)
		return nil, err
	}
	return image, nil
}

// MetaInput is the JSON metadata shape for image updates.
type MetaInput struct {
	Name        string  `json:"name"`
	IsPublic    bool    `json:"is_public"`
	Description *string `json:"description"`
	License     *string `json:"license"`
	SortOrder   int     `json:"sort_order"`
}

// UpdateImage rewrites an image's metadata. The stored files are untouched.
func (service *Service) UpdateImage(ctx context.Context, id string, input MetaInput) (*Image, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 255)
	if err := v.Err(); err != nil {
		return nil, err
	}

	image, err := service.repo.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}

	image.Name = input.Name
	image.IsPublic = input.IsPublic
	image.Description = input.Description
	image.License = input.License
	image.SortOrder = input.SortOrder

	if err := service.repo.UpdateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ReplaceFile swaps an image's stored file for a new upload and regenerates
// the thumbnail from it. The old files are removed after the record commits.
func (service *Service) ReplaceFile(ctx context.Context, id string, file io.Reader) (*Image, error) {
	image, err := service.repo.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}

	decoded, format, raw, err := DecodeUpload(file)
	if err != nil {
		return nil, err
	}

	oldImagePath := image.ImagePath
	oldThumbnailPath := image.ThumbnailPath

	imagePath, err := service.storage.SaveOriginal(constants.MediaImageDir, image.ID, format, raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	thumbnailPath, err := service.storage.SaveThumbnail(
		constants.MediaThumbnailDir, image.ID, decoded,
		constants.ItemThumbnailWidth, constants.ItemThumbnailHeight,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	bounds := decoded.Bounds()
	image.ImagePath = imagePath
	image.ImageWidth = bounds.Dx()
	image.ImageHeight = bounds.Dy()
	image.ThumbnailPath = thumbnailPath

	if err := service.repo.UpdateImage(ctx, image); err != nil {
		return nil, err
	}

	// Same ID usually means same path; only remove files the swap orphaned.
	if oldImagePath != imagePath {
		service.cleanupFiles(ctx, oldImagePath)
	}
	if oldThumbnailPath != thumbnailPath {
		service.cleanupFiles(ctx, oldThumbnailPath)
	}
	return image, nil
}

// DeleteImage removes the record, then the files. File removal is best
// effort: a stranded file is logged, not surfaced.
func (service *Service) DeleteImage(ctx context.Context, id string) error {
	image, err := service.repo.DeleteImage(ctx, id)
	if err != nil {
		return err
	}

	service.cleanupFiles(ctx, image.ImagePath, image.ThumbnailPath)
	return nil
}

// RemoteInput is the JSON shape for remote image references.
type RemoteInput struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

func (service *Service) CreateRemoteImage(ctx context.Context, itemID string, input RemoteInput) (*RemoteImage, error) {
	if err := validateRemote(input); err != nil {
		return nil, err
	}

	exists, err := service.repo.ItemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Item")
	}

	remote := &RemoteImage{
		ID:          uuidv7.New(),
		ItemID:      itemID,
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
	}
	if err := service.repo.CreateRemoteImage(ctx, remote); err != nil {
		return nil, err
	}
	return remote, nil
}

func (service *Service) UpdateRemoteImage(ctx context.Context, id string, input RemoteInput) (*RemoteImage, error) {
	if err := validateRemote(input); err != nil {
		return nil, err
	}

	remote, err := service.repo.GetRemoteImage(ctx, id)
	if err != nil {
		return nil, err
	}

	remote.Name = input.Name
	remote.URL = input.URL
	remote.Description = input.Description

	if err := service.repo.UpdateRemoteImage(ctx, remote); err != nil {
		return nil, err
	}
	return remote, nil
}

func (service *Service) DeleteRemoteImage(ctx context.Context, id string) error {
	return service.repo.DeleteRemoteImage(ctx, id)
}

func (service *Service) ListImages(ctx context.Context, itemID string) ([]*Image, error) {
	return service.repo.ListImages(ctx, itemID)
}

func (service *Service) ListRemoteImages(ctx context.Context, itemID string) ([]*RemoteImage, error) {
	return service.repo.ListRemoteImages(ctx, itemID)
}

func validateRemote(input RemoteInput) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 255)
	v.Required("url", input.URL).MaxLen("url", input.URL, 2048)
	return v.Err()
}

func (service *Service) cleanupFiles(ctx context.Context, relPaths ...string) {
	for _, relPath := range relPaths {
		if err := service.storage.Remove(relPath); err != nil {
			service.logger.WarnContext(ctx, "media_file_cleanup_failed",
				slog.String("path", relPath),
				slog.String("error", err.Error()),
			)
		}
	}
}
