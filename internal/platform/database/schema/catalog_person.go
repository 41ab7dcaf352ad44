// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// CatalogPersonTable represents the 'catalog.person' table
type CatalogPersonTable struct {
	Table        string
	ID           string
	Fullname     string
	CitationName string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogPerson is the schema definition for catalog.person
var CatalogPerson = CatalogPersonTable{
	Table:        "catalog.person",
	ID:           "id",
	Fullname:     "fullname",
	CitationName: "citation_name",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// CatalogContributionTable represents the 'catalog.contribution' table
type CatalogContributionTable struct {
	Table        string
	ID           string
	ItemID       string
	PersonID     string
	MarcRelators string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogContribution is the schema definition for catalog.contribution
var CatalogContribution = CatalogContributionTable{
	Table:        "catalog.contribution",
	ID:           "id",
	ItemID:       "item_id",
	PersonID:     "person_id",
	MarcRelators: "marc_relators",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
