// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package about

import (
	"context"
	"io"
	"log/slog"

	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/uuidv7"
)

// Service carries the About page business logic. Team portraits share the
// media storage with item images but use the smaller team thumbnail box.
type Service struct {
	repo    Repository
	storage *media.Storage
	logger  *slog.Logger
}

func NewService(repo Repository, storage *media.Storage, logger *slog.Logger) *Service {
	return &Service{repo: repo, storage: storage, logger: logger}
}

// Page returns the singleton About page with the team roster.
func (service *Service) Page(ctx context.Context) (*Page, error) {
	return service.repo.GetPage(ctx)
}

// UpdateContent rewrites the page body.
func (service *Service) UpdateContent(ctx context.Context, content string) (*Page, error) {
	v := &validate.Validator{}
	v.Required("content", content)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return service.repo.UpdateContent(ctx, content)
}

// MemberInput is the write shape for roster entries. Portrait upload is a
// separate call.
type MemberInput struct {
	Name      string  `json:"name"`
	Profile   *string `json:"profile"`
	SortOrder int     `json:"sort_order"`
}

func (service *Service) CreateTeamMember(ctx context.Context, input MemberInput) (*TeamMember, error) {
	if err := validateMember(input); err != nil {
		return nil, err
	}

	member := &TeamMember{
		Name:      input.Name,
		Profile:   input.Profile,
		SortOrder: input.SortOrder,
	}
	if err := service.repo.CreateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (service *Service) UpdateTeamMember(ctx context.Context, id int, input MemberInput) (*TeamMember, error) {
	if err := validateMember(input); err != nil {
		return nil, err
	}

	member, err := service.repo.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = input.Name
	member.Profile = input.Profile
	member.SortOrder = input.SortOrder

	if err := service.repo.UpdateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetPortrait stores a new portrait for the member and regenerates the
// 150x150 thumbnail. Files orphaned by the swap are removed best effort.
func (service *Service) SetPortrait(ctx context.Context, id int, file io.Reader) (*TeamMember, error) {
	member, err := service.repo.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}

	decoded, format, raw, err := media.DecodeUpload(file)
	if err != nil {
		return nil, err
	}

	fileID := uuidv7.New()

	imagePath, err := service.storage.SaveOriginal(constants.MediaImageDir, fileID, format, raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	thumbnailPath, err := service.storage.SaveThumbnail(
		constants.MediaThumbnailDir, fileID, decoded,
		constants.TeamThumbnailWidth, constants.TeamThumbnailHeight,
	)
	if err != nil {
		service.cleanupFiles(ctx, &imagePath)
		return nil, apperr.Internal(err)
	}

	oldImagePath := member.ImagePath
	oldThumbnailPath := member.ThumbnailPath
	member.ImagePath = &imagePath
	member.ThumbnailPath = &thumbnailPath

	if err := service.repo.UpdateTeamMember(ctx, member); err != nil {
		service.cleanupFiles(ctx, &imagePath, &thumbnailPath)
		return nil, err
	}

	service.cleanupFiles(ctx, oldImagePath, oldThumbnailPath)
	return member, nil
}

func (service *Service) DeleteTeamMember(ctx context.Context, id int) error {
	member, err := service.repo.DeleteTeamMember(ctx, id)
	if err != nil {
		return err
	}

	service.cleanupFiles(ctx, member.ImagePath, member.ThumbnailPath)
	return nil
}

func validateMember(input MemberInput) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 255)
	return v.Err()
}

func (service *Service) cleanupFiles(ctx context.Context, relPaths ...*string) {
	for _, relPath := range relPaths {
		if relPath == nil {
			continue
		}
		if err := service.storage.Remove(*relPath); err != nil {
			service.logger.WarnContext(ctx, "portrait_cleanup_failed",
				slog.String("path", *relPath),
				slog.String("error", err.Error()),
			)
		}
	}
}
