// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package about implements the site's single About page and its team roster.

The page is a database singleton: exactly one row, created by the schema
migration, only ever updated. Team members hang off it with a portrait,
a profile blurb, and an explicit display order.
*/
package about

import "time"

// aboutPageID is the fixed primary key of the singleton row.
const aboutPageID = 1

// Page is the About page with its ordered team roster.
type Page struct {
	ID        int          `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"updated_at"`
	Team      []TeamMember `json:"team"`
}

// TeamMember is one person on the roster.
type TeamMember struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Profile       *string   `json:"profile"`
	ImagePath     *string   `json:"image_path"`
	ThumbnailPath *string   `json:"thumbnail_path"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
