// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// CatalogImageTable represents the 'catalog.image' table
type CatalogImageTable struct {
	Table         string
	ID            string
	ItemID        string
	Name          string
	IsPublic      string
	ImagePath     string
	ImageWidth    string
	ImageHeight   string
	ThumbnailPath string
	Description   string
	License       string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogImage is the schema definition for catalog.image
var CatalogImage = CatalogImageTable{
	Table:         "catalog.image",
	ID:            "id",
	ItemID:        "item_id",
	Name:          "name",
	IsPublic:      "is_public",
	ImagePath:     "image_path",
	ImageWidth:    "image_width",
	ImageHeight:   "image_height",
	ThumbnailPath: "thumbnail_path",
	Description:   "description",
	License:       "license",
	SortOrder:     "sort_order",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// CatalogRemoteImageTable represents the 'catalog.remote_image' table
type CatalogRemoteImageTable struct {
	Table       string
	ID          string
	ItemID      string
	Name        string
	URL         string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogRemoteImage is the schema definition for catalog.remote_image
var CatalogRemoteImage = CatalogRemoteImageTable{
	Table:       "catalog.remote_image",
	ID:          "id",
	ItemID:      "item_id",
	Name:        "name",
	URL:         "url",
	Description: "description",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
