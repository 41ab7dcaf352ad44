// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

// Package schema centralizes physical table and column names.
//
// # Why not an ORM?
//
// Repositories build SQL with fmt/strings.Builder against these constants.
// Keeping names in one place prevents drift between migrations and queries
// without hiding the SQL behind a query DSL.
package schema

// TermTable describes one controlled-vocabulary table. All eight
// vocabularies share the same base column set, so a single descriptor type
// parameterizes the generic term repository.
type TermTable struct {
	Table         string
	ID            string
	Label         string
	LabelAr       string
	Description   string
	DescriptionAr string
	Slug          string
	CreatedAt     string
	UpdatedAt     string
}

// termTable builds a TermTable for the given physical table name.
func termTable(table string) TermTable {
	return TermTable{
		Table:         table,
		ID:            "id",
		Label:         "label",
		LabelAr:       "label_ar",
		Description:   "description",
		DescriptionAr: "description_ar",
		Slug:          "slug",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",
	}
}

// The eight concrete vocabulary tables.
var (
	TermCategory         = termTable("catalog.category")
	TermCulture          = termTable("catalog.culture")
	TermInscriptionStyle = termTable("catalog.inscription_style")
	TermLanguage         = termTable("catalog.language")
	TermLocation         = termTable("catalog.location")
	TermMaterial         = termTable("catalog.material")
	TermSubject          = termTable("catalog.subject")
	TermTechnique        = termTable("catalog.technique")
)

// Extra columns carried only by specific vocabularies. The column names are
// identical on every table that has them, so plain constants suffice.
const (
	// catalog.location and catalog.subject
	TermAlternateNames = "alternate_names"

	// catalog.location only (geocoding)
	TermGeonameID = "geonameid"
	TermLatitude  = "latitude"
	TermLongitude = "longitude"
	TermCountry   = "country"
)
