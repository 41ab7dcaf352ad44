// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term

import "context"

// Repository is the storage contract shared by all eight vocabularies.
type Repository interface {
	// List returns every term of the kind ordered by label.
	List(ctx context.Context, kind Kind) ([]*Term, error)

	// Get returns a single term by primary key.
	Get(ctx context.Context, kind Kind, id int) (*Term, error)

	// Create inserts a term and populates its ID and timestamps.
	Create(ctx context.Context, kind Kind, t *Term) error

	// Update rewrites a term's mutable fields.
	Update(ctx context.Context, kind Kind, t *Term) error

	// Delete removes a term. Junction rows and item foreign keys cascade.
	Delete(ctx context.Context, kind Kind, id int) error
}

// OptionsCache stores the serialized public filter-options payload.
type OptionsCache interface {
	GetOptions(ctx context.Context) ([]byte, bool)
	SetOptions(ctx context.Context, payload []byte)
	InvalidateOptions(ctx context.Context)
}
