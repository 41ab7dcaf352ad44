// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package media implements the image attachments of catalog items.

Two attachment types exist. [Image] is an uploaded file stored on local
disk with a server-generated thumbnail; it carries its own visibility flag
so curators can hold photographs back from the public site. [RemoteImage]
is a bare URL reference to an image hosted elsewhere, used for material the
project may not rehost.
*/
package media

import "time"

// Image is one uploaded photograph of an item.
type Image struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
	Name   string `json:"name"`

	// IsPublic gates the image independently of its item. A private image
	// on a public item is visible to curators only.
	IsPublic bool `json:"is_public"`

	ImagePath     string  `json:"image_path"`
	ImageWidth    int     `json:"image_width"`
	ImageHeight   int     `json:"image_height"`
	ThumbnailPath string  `json:"thumbnail_path"`
	Description   *string `json:"description"`
	License       *string `json:"license"`
	SortOrder     int     `json:"sort_order"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RemoteImage is a URL reference to an externally hosted image.
type RemoteImage struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
