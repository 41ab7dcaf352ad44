// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person

import (
	"context"
	"log/slog"

	"github.com/digital-mary/catalog/internal/platform/validate"
)

// Service carries person-registry business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(ctx context.Context) ([]*Person, error) {
	return service.repo.List(ctx)
}

func (service *Service) Get(ctx context.Context, id int) (*Person, error) {
	return service.repo.Get(ctx, id)
}

func (service *Service) Create(ctx context.Context, p *Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}
	return service.repo.Create(ctx, p)
}

func (service *Service) Update(ctx context.Context, p *Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}
	return service.repo.Update(ctx, p)
}

func (service *Service) Delete(ctx context.Context, id int) error {
	return service.repo.Delete(ctx, id)
}

func validatePerson(p *Person) error {
	v := &validate.Validator{}
	v.Required("fullname", p.Fullname).MaxLen("fullname", p.Fullname, 255)
	if p.CitationName != nil {
		v.MaxLen("citation_name", *p.CitationName, 255)
	}
	return v.Err()
}
