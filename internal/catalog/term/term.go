// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package term implements the controlled vocabularies used to tag catalog items.

Eight vocabularies exist: category, culture, inscription style, language,
location, material, subject, and technique. They share one field set
("labeled, described, translatable"), so a single [Term] record type and a
single generic repository serve all of them, parameterized by [Kind].
Location and subject carry alternate-name aliases; location additionally
carries geocoding fields.
*/
package term

import (
	"time"

	"github.com/digital-mary/catalog/internal/platform/database/schema"
)

// Kind identifies one of the eight concrete vocabularies.
type Kind string

const (
	KindCategory         Kind = "category"
	KindCulture          Kind = "culture"
	KindInscriptionStyle Kind = "inscription_style"
	KindLanguage         Kind = "language"
	KindLocation         Kind = "location"
	KindMaterial         Kind = "material"
	KindSubject          Kind = "subject"
	KindTechnique        Kind = "technique"
)

// Kinds lists every vocabulary in stable display order.
var Kinds = []Kind{
	KindCategory,
	KindCulture,
	KindInscriptionStyle,
	KindLanguage,
	KindLocation,
	KindMaterial,
	KindSubject,
	KindTechnique,
}

// kindInfo binds a Kind to its physical table and optional column groups.
type kindInfo struct {
	table      schema.TermTable
	hasAliases bool
	hasGeo     bool
}

var kinds = map[Kind]kindInfo{
	KindCategory:         {table: schema.TermCategory},
	KindCulture:          {table: schema.TermCulture},
	KindInscriptionStyle: {table: schema.TermInscriptionStyle},
	KindLanguage:         {table: schema.TermLanguage},
	KindLocation:         {table: schema.TermLocation, hasAliases: true, hasGeo: true},
	KindMaterial:         {table: schema.TermMaterial},
	KindSubject:          {table: schema.TermSubject, hasAliases: true},
	KindTechnique:        {table: schema.TermTechnique},
}

// ParseKind maps a URL segment to a Kind. The second return value reports
// whether the segment named a known vocabulary.
func ParseKind(s string) (Kind, bool) {
	kind := Kind(s)
	_, ok := kinds[kind]
	return kind, ok
}

// Table returns the physical table descriptor for the kind.
func (k Kind) Table() schema.TermTable {
	return kinds[k].table
}

// HasAliases reports whether the vocabulary carries alternate names.
func (k Kind) HasAliases() bool {
	return kinds[k].hasAliases
}

// HasGeo reports whether the vocabulary carries geocoding fields.
func (k Kind) HasGeo() bool {
	return kinds[k].hasGeo
}

// Term is one controlled-vocabulary record.
//
// AlternateNames is populated only for location and subject; the geocoding
// fields only for location. The label is required and drives default
// ordering and display.
type Term struct {
	ID            int       `json:"id"`
	Label         string    `json:"label"`
	LabelAr       *string   `json:"label_ar"`
	Description   *string   `json:"description"`
	DescriptionAr *string   `json:"description_ar"`
	Slug          string    `json:"slug"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Extra search/autocomplete aliases (location and subject only).
	AlternateNames []string `json:"alternate_names,omitempty"`

	// Geocoding (location only).
	GeonameID *int     `json:"geonameid,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Country   *string  `json:"country,omitempty"`
}

// String returns the display string for the term.
func (t *Term) String() string {
	return t.Label
}

// Ref is the compact representation embedded in item payloads.
type Ref struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// AsRef converts a full term into its embedded representation.
func (t *Term) AsRef() Ref {
	return Ref{ID: t.ID, Label: t.Label, Slug: t.Slug}
}
