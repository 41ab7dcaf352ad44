// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/slice"
	"github.com/digital-mary/catalog/pkg/slug"
)

// Service carries vocabulary business logic: validation, slug derivation,
// and the cached option-set payload for the public search form.
type Service struct {
	repo   Repository
	cache  OptionsCache
	logger *slog.Logger
}

func NewService(repo Repository, cache OptionsCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context, kind Kind) ([]*Term, error) {
	return service.repo.List(ctx, kind)
}

func (service *Service) Get(ctx context.Context, kind Kind, id int) (*Term, error) {
	return service.repo.Get(ctx, kind, id)
}

// Create validates and persists a new term. The slug is derived from the
// label unless explicitly provided.
func (service *Service) Create(ctx context.Context, kind Kind, term *Term) error {
	v := &validate.Validator{}
	v.Required("label", term.Label).MaxLen("label", term.Label, 255)
	if err := v.Err(); err != nil {
		return err
	}

	if term.Slug == "" {
		term.Slug = slug.From(term.Label)
	}

	if err := service.repo.Create(ctx, kind, term); err != nil {
		return err
	}

	service.invalidateOptions(ctx)
	return nil
}

func (service *Service) Update(ctx context.Context, kind Kind, term *Term) error {
	v := &validate.Validator{}
	v.Required("label", term.Label).MaxLen("label", term.Label, 255)
	if err := v.Err(); err != nil {
		return err
	}

	if term.Slug == "" {
		term.Slug = slug.From(term.Label)
	}

	if err := service.repo.Update(ctx, kind, term); err != nil {
		return err
	}

	service.invalidateOptions(ctx)
	return nil
}

func (service *Service) Delete(ctx context.Context, kind Kind, id int) error {
	if err := service.repo.Delete(ctx, kind, id); err != nil {
		return err
	}

	service.invalidateOptions(ctx)
	return nil
}

// OptionSets returns every vocabulary as compact label/id pairs keyed by
// kind, for the public search form. The payload is cached in Redis; cache
// failures fall through to the database.
func (service *Service) OptionSets(ctx context.Context) (map[Kind][]Ref, error) {
	if service.cache != nil {
		if payload, ok := service.cache.GetOptions(ctx); ok {
			var cached map[Kind][]Ref
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			// A corrupt cache entry is dropped, not served.
			service.cache.InvalidateOptions(ctx)
		}
	}

	options := make(map[Kind][]Ref, len(Kinds))
	for _, kind := range Kinds {
		terms, err := service.repo.List(ctx, kind)
		if err != nil {
			return nil, err
		}

		options[kind] = slice.Map(terms, func(t *Term) Ref { return t.AsRef() })
	}

	if service.cache != nil {
		if payload, err := json.Marshal(options); err == nil {
			service.cache.SetOptions(ctx, payload)
		}
	}

	return options, nil
}

func (service *Service) invalidateOptions(ctx context.Context) {
	if service.cache != nil {
		service.cache.InvalidateOptions(ctx)
	}
}
