// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/uuidv7"
)

// Service carries item business logic on top of the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Search runs the public filtered listing. Only public items are visible.
func (service *Service) Search(ctx context.Context, filter Filter) ([]*Summary, int, error) {
	return service.repo.List(ctx, filter, false)
}

// AdminSearch runs the same listing without the visibility constraint.
func (service *Service) AdminSearch(ctx context.Context, filter Filter) ([]*Summary, int, error) {
	return service.repo.List(ctx, filter, true)
}

// Get returns a public item with associations resolved.
func (service *Service) Get(ctx context.Context, id string) (*Item, error) {
	return service.repo.Get(ctx, id, false)
}

// AdminGet returns any item, public or not, with private images included.
func (service *Service) AdminGet(ctx context.Context, id string) (*Item, error) {
	return service.repo.Get(ctx, id, true)
}

func (service *Service) Create(ctx context.Context, it *Item, links Links) (*Item, error) {
	if err := validateItem(it, links); err != nil {
		return nil, err
	}

	it.ID = uuidv7.New()
	if err := service.repo.Create(ctx, it, links); err != nil {
		return nil, err
	}

	return service.repo.Get(ctx, it.ID, true)
}

func (service *Service) Update(ctx context.Context, it *Item, links Links) (*Item, error) {
	if err := validateItem(it, links); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, it, links); err != nil {
		return nil, err
	}

	return service.repo.Get(ctx, it.ID, true)
}

func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.Delete(ctx, id)
}

func validateItem(it *Item, links Links) error {
	v := &validate.Validator{}
	v.Required("name", it.Name).MaxLen("name", it.Name, 512)

	if it.EarliestCreation != nil {
		v.Custom("earliest_creation", !it.EarliestCreation.Valid(),
			fmt.Sprintf("Must be between %d and %d", PeriodMin, PeriodMax))
	}
	if it.LatestCreation != nil {
		v.Custom("latest_creation", !it.LatestCreation.Valid(),
			fmt.Sprintf("Must be between %d and %d", PeriodMin, PeriodMax))
	}
	if it.EarliestCreation != nil && it.LatestCreation != nil {
		v.Custom("latest_creation", *it.LatestCreation < *it.EarliestCreation,
			"Must not precede earliest_creation")
	}

	for _, contribution := range links.Contributions {
		v.Custom("contributions", contribution.PersonID <= 0, "Each contribution needs a person")
		for _, code := range contribution.MarcRelators {
			if !person.IsRelator(code) {
				v.Custom("contributions", true, fmt.Sprintf("Unknown relator code %q", code))
			}
		}
	}

	return v.Err()
}
