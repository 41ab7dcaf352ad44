// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package item implements the central catalog entity: the museum artifact.

An item aggregates free-text description fields, a pair of century-bucket
creation bounds, six many-to-many vocabulary tag sets, three optional
single-term references, uploaded and remote images, and role-tagged person
contributions. Public read paths always filter on the is_public flag.

Full-text search runs against a persisted search vector column generated by
the database from the weighted name, description, and inscription fields in
both English and Arabic. Because the column is generated, the vector can
never drift from the fields it projects.
*/
package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/internal/catalog/term"
)

// Period is one of the 21 century buckets used to date an item. The zero
// value is not a valid period; an unknown date is represented by a nil
// *Period and a NULL column.
type Period int

const (
	PeriodMin Period = 1
	PeriodMax Period = 21
)

// PeriodUnknownLabel is the display sentinel for items with no known date.
const PeriodUnknownLabel = "Unknown"

// Valid reports whether the period falls inside the supported range.
func (p Period) Valid() bool {
	return p >= PeriodMin && p <= PeriodMax
}

// Label renders the period as an ordinal century, e.g. "3rd Century".
func (p Period) Label() string {
	suffix := "th"
	switch p % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if p >= 11 && p <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s Century", int(p), suffix)
}

// PeriodChoice pairs a period value with its label for form option lists.
type PeriodChoice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// PeriodChoices returns every period in ascending order.
func PeriodChoices() []PeriodChoice {
	choices := make([]PeriodChoice, 0, int(PeriodMax))
	for p := PeriodMin; p <= PeriodMax; p++ {
		choices = append(choices, PeriodChoice{Value: int(p), Label: p.Label()})
	}
	return choices
}

// Item is one catalog artifact.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameAr   *string `json:"name_ar"`
	IsPublic bool    `json:"is_public"`

	Description             *string `json:"description"`
	DescriptionAr           *string `json:"description_ar"`
	Inscription             *string `json:"inscription"`
	TranslatedInscription   *string `json:"translated_inscription"`
	TranslatedInscriptionAr *string `json:"translated_inscription_ar"`
	CurrentLocation         *string `json:"current_location"`
	Dimensions              *string `json:"dimensions"`
	Interpretations         *string `json:"interpretations"`
	BibliographicReferences *string `json:"bibliographic_references"`

	// DisplayDateOverride, when set, wins over the rendered period range.
	DisplayDateOverride *string `json:"display_date_override"`
	EarliestCreation    *Period `json:"earliest_creation"`
	LatestCreation      *Period `json:"latest_creation"`

	// Free-text fallbacks for when no controlled-vocabulary term applies.
	CultureOther    *string `json:"culture_other"`
	FindspotOther   *string `json:"findspot_other"`
	ProvenanceOther *string `json:"provenance_other"`

	InscriptionStyleID *int `json:"inscription_style_id"`
	FindspotID         *int `json:"findspot_id"`
	ProvenanceID       *int `json:"provenance_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Tag sets (many-to-many vocabularies).
	Categories []term.Ref `json:"categories"`
	Cultures   []term.Ref `json:"cultures"`
	Languages  []term.Ref `json:"languages"`
	Techniques []term.Ref `json:"techniques"`
	Materials  []term.Ref `json:"materials"`
	Subjects   []term.Ref `json:"subjects"`

	// Single-term references, populated on detail reads.
	InscriptionStyle *term.Ref `json:"inscription_style,omitempty"`
	Findspot         *term.Ref `json:"findspot,omitempty"`
	Provenance       *term.Ref `json:"provenance,omitempty"`

	Images        []media.Image         `json:"images"`
	RemoteImages  []media.RemoteImage   `json:"remote_images"`
	Contributions []person.Contribution `json:"contributions"`
}

// DisplayDate renders the human-readable creation date.
//
// The explicit override wins. Otherwise both period labels joined by " - ",
// a single label when only one bound is known, and the unknown sentinel
// when neither is.
func (item *Item) DisplayDate() string {
	return renderDisplayDate(item.DisplayDateOverride, item.EarliestCreation, item.LatestCreation)
}

func renderDisplayDate(override *string, earliest, latest *Period) string {
	if override != nil && *override != "" {
		return *override
	}

	switch {
	case earliest != nil && latest != nil:
		return earliest.Label() + " - " + latest.Label()
	case earliest != nil:
		return earliest.Label()
	case latest != nil:
		return latest.Label()
	default:
		return PeriodUnknownLabel
	}
}

// CitationAuthors returns the citation strings of every contributor whose
// role list carries the author relator, each with a trailing period, in the
// contributions' default order (by person citation name).
func (item *Item) CitationAuthors() []string {
	authors := make([]string, 0)
	for i := range item.Contributions {
		contribution := &item.Contributions[i]
		if !contribution.HasRole(person.RelatorAuthor) || contribution.Person == nil {
			continue
		}

		name := contribution.Person.DisplayName()
		if !strings.HasSuffix(name, ".") {
			name += "."
		}
		authors = append(authors, name)
	}
	return authors
}

// PublicImages returns the uploaded images visible to site visitors,
// preserving sort order.
func (item *Item) PublicImages() []media.Image {
	images := make([]media.Image, 0, len(item.Images))
	for _, image := range item.Images {
		if image.IsPublic {
			images = append(images, image)
		}
	}
	return images
}

// FirstPublicImage returns the lead public image, or nil when none exists.
func (item *Item) FirstPublicImage() *media.Image {
	for i := range item.Images {
		if item.Images[i].IsPublic {
			return &item.Images[i]
		}
	}
	return nil
}

// PublicImageCount counts the uploaded images visible to site visitors.
func (item *Item) PublicImageCount() int {
	count := 0
	for _, image := range item.Images {
		if image.IsPublic {
			count++
		}
	}
	return count
}

// PrivateImages returns the uploaded images held back from the public site.
func (item *Item) PrivateImages() []media.Image {
	images := make([]media.Image, 0)
	for _, image := range item.Images {
		if !image.IsPublic {
			images = append(images, image)
		}
	}
	return images
}

// PrivateImageCount counts the curator-only uploaded images.
func (item *Item) PrivateImageCount() int {
	return len(item.Images) - item.PublicImageCount()
}
