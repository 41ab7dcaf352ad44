// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// CatalogItemTable represents the 'catalog.item' table
type CatalogItemTable struct {
	Table                     string
	ID                        string
	Name                      string
	NameAr                    string
	IsPublic                  string
	Description               string
	DescriptionAr             string
	Inscription               string
	TranslatedInscription     string
	TranslatedInscriptionAr   string
	CurrentLocation           string
	Dimensions                string
	Interpretations           string
	BibliographicReferences   string
	DisplayDate               string
	EarliestCreation          string
	LatestCreation            string
	CultureOther              string
	FindspotOther             string
	ProvenanceOther           string
	InscriptionStyleID        string
	FindspotID                string
	ProvenanceID              string
	SearchVector              string
	CreatedAt                 string
	UpdatedAt                 string
}

// CatalogItem is the schema definition for catalog.item
var CatalogItem = CatalogItemTable{
	Table:                   "catalog.item",
	ID:                      "id",
	Name:                    "name",
	NameAr:                  "name_ar",
	IsPublic:                "is_public",
	Description:             "description",
	DescriptionAr:           "description_ar",
	Inscription:             "inscription",
	TranslatedInscription:   "translated_inscription",
	TranslatedInscriptionAr: "translated_inscription_ar",
	CurrentLocation:         "current_location",
	Dimensions:              "dimensions",
	Interpretations:         "interpretations",
	BibliographicReferences: "bibliographic_references",
	DisplayDate:             "display_date",
	EarliestCreation:        "earliest_creation",
	LatestCreation:          "latest_creation",
	CultureOther:            "culture_other",
	FindspotOther:           "findspot_other",
	ProvenanceOther:         "provenance_other",
	InscriptionStyleID:      "inscription_style_id",
	FindspotID:              "findspot_id",
	ProvenanceID:            "provenance_id",
	SearchVector:            "search_vector",
	CreatedAt:               "created_at",
	UpdatedAt:               "updated_at",
}

func (t CatalogItemTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NameAr, t.IsPublic, t.Description, t.DescriptionAr,
		t.Inscription, t.TranslatedInscription, t.TranslatedInscriptionAr,
		t.CurrentLocation, t.Dimensions, t.Interpretations,
		t.BibliographicReferences, t.DisplayDate, t.EarliestCreation,
		t.LatestCreation, t.CultureOther, t.FindspotOther, t.ProvenanceOther,
		t.InscriptionStyleID, t.FindspotID, t.ProvenanceID,
		t.CreatedAt, t.UpdatedAt,
	}
}

// JunctionTable represents one item<->term many-to-many table.
type JunctionTable struct {
	Table  string
	ItemID string
	TermID string
}

// The six item<->vocabulary junction tables.
var (
	ItemCategory  = JunctionTable{Table: "catalog.item_category", ItemID: "item_id", TermID: "category_id"}
	ItemCulture   = JunctionTable{Table: "catalog.item_culture", ItemID: "item_id", TermID: "culture_id"}
	ItemLanguage  = JunctionTable{Table: "catalog.item_language", ItemID: "item_id", TermID: "language_id"}
	ItemTechnique = JunctionTable{Table: "catalog.item_technique", ItemID: "item_id", TermID: "technique_id"}
	ItemMaterial  = JunctionTable{Table: "catalog.item_material", ItemID: "item_id", TermID: "material_id"}
	ItemSubject   = JunctionTable{Table: "catalog.item_subject", ItemID: "item_id", TermID: "subject_id"}
)
