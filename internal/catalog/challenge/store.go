// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package challenge

import "context"

// Repository is the storage contract for visitor inquiries.
type Repository interface {
	// Create inserts a new inquiry.
	Create(ctx context.Context, c *Challenge) error

	// List returns inquiries newest first. archived narrows to handled or
	// live inquiries when set.
	List(ctx context.Context, archived *bool) ([]*Challenge, error)

	// SetArchived flips the handled flag on a batch of inquiries.
	SetArchived(ctx context.Context, ids []string, archived bool) error

	// Delete removes one inquiry.
	Delete(ctx context.Context, id string) error

	// PublicItemName returns the name of the item when it exists and is
	// public; ok is false otherwise.
	PublicItemName(ctx context.Context, itemID string) (string, bool, error)
}
