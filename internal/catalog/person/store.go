// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person

import "context"

// Repository is the storage contract for the person registry.
type Repository interface {
	// List returns every person ordered by display name.
	List(ctx context.Context) ([]*Person, error)

	// Get returns a single person by primary key.
	Get(ctx context.Context, id int) (*Person, error)

	// Create inserts a person and populates its ID and timestamps.
	Create(ctx context.Context, p *Person) error

	// Update rewrites a person's names.
	Update(ctx context.Context, p *Person) error

	// Delete removes a person. Their contributions cascade.
	Delete(ctx context.Context, id int) error
}
