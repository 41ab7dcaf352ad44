// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// CatalogChallengeTable represents the 'catalog.challenge' table
type CatalogChallengeTable struct {
	Table     string
	ID        string
	ItemID    string
	Fullname  string
	Email     string
	Message   string
	Archive   string
	CreatedAt string
	UpdatedAt string
}

// CatalogChallenge is the schema definition for catalog.challenge
var CatalogChallenge = CatalogChallengeTable{
	Table:     "catalog.challenge",
	ID:        "id",
	ItemID:    "item_id",
	Fullname:  "fullname",
	Email:     "email",
	Message:   "message",
	Archive:   "archive",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
