// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import "context"

// Repository is the storage contract for image attachments.
type Repository interface {
	// GetImage returns one uploaded image by primary key.
	GetImage(ctx context.Context, id string) (*Image, error)

	// ListImages returns an item's uploaded images in sort order.
	ListImages(ctx context.Context, itemID string) ([]*Image, error)

	// CreateImage inserts an uploaded image record.
	CreateImage(ctx context.Context, image *Image) error

	// UpdateImage rewrites an image's metadata and file paths.
	UpdateImage(ctx context.Context, image *Image) error

	// DeleteImage removes the record. File cleanup is the caller's job.
	DeleteImage(ctx context.Context, id string) (*Image, error)

	// GetRemoteImage returns one remote reference by primary key.
	GetRemoteImage(ctx context.Context, id string) (*RemoteImage, error)

	// ListRemoteImages returns an item's remote references.
	ListRemoteImages(ctx context.Context, itemID string) ([]*RemoteImage, error)

	// CreateRemoteImage inserts a remote reference.
	CreateRemoteImage(ctx context.Context, remote *RemoteImage) error

	// UpdateRemoteImage rewrites a remote reference.
	UpdateRemoteImage(ctx context.Context, remote *RemoteImage) error

	// DeleteRemoteImage removes a remote reference.
	DeleteRemoteImage(ctx context.Context, id string) error

	// ItemExists reports whether the owning item is present.
	ItemExists(ctx context.Context, itemID string) (bool, error)
}
