// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// CatalogAboutPageTable represents the singleton 'catalog.about_page' table
type CatalogAboutPageTable struct {
	Table     string
	ID        string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// CatalogAboutPage is the schema definition for catalog.about_page
var CatalogAboutPage = CatalogAboutPageTable{
	Table:     "catalog.about_page",
	ID:        "id",
	Content:   "content",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// CatalogTeamMemberTable represents the 'catalog.team_member' table
type CatalogTeamMemberTable struct {
	Table         string
	ID            string
	AboutPageID   string
	Name          string
	Profile       string
	ImagePath     string
	ThumbnailPath string
	SortOrder     string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogTeamMember is the schema definition for catalog.team_member
var CatalogTeamMember = CatalogTeamMemberTable{
	Table:         "catalog.team_member",
	ID:            "id",
	AboutPageID:   "about_page_id",
	Name:          "name",
	Profile:       "profile",
	ImagePath:     "image_path",
	ThumbnailPath: "thumbnail_path",
	SortOrder:     "sort_order",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}
