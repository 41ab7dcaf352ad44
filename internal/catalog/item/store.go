// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import "context"

// Summary is the compact list-page projection of an item. It carries just
// enough for a result card: name, rendered date, lead thumbnail.
type Summary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameAr   *string `json:"name_ar"`
	IsPublic bool    `json:"is_public"`

	DisplayDateOverride *string `json:"-"`
	EarliestCreation    *Period `json:"-"`
	LatestCreation      *Period `json:"-"`

	ThumbnailPath *string `json:"thumbnail_path"`
	ImageCount    int     `json:"image_count"`

	rank float64
}

// DisplayDate renders the human-readable creation date for the result card.
func (s *Summary) DisplayDate() string {
	return renderDisplayDate(s.DisplayDateOverride, s.EarliestCreation, s.LatestCreation)
}

// Links carries the association IDs written alongside an item. Reads return
// resolved labels instead; writes take bare IDs.
type Links struct {
	CategoryIDs  []int `json:"category_ids"`
	CultureIDs   []int `json:"culture_ids"`
	LanguageIDs  []int `json:"language_ids"`
	TechniqueIDs []int `json:"technique_ids"`
	MaterialIDs  []int `json:"material_ids"`
	SubjectIDs   []int `json:"subject_ids"`

	Contributions []ContributionLink `json:"contributions"`
}

// ContributionLink is the write shape of one item contribution.
type ContributionLink struct {
	PersonID     int      `json:"person_id"`
	MarcRelators []string `json:"marc_relators"`
}

// Repository is the storage contract for catalog items.
type Repository interface {
	// List runs the filtered search and returns one page of summaries plus
	// the total match count. includePrivate lifts the is_public constraint
	// for curator views.
	List(ctx context.Context, filter Filter, includePrivate bool) ([]*Summary, int, error)

	// Get returns one item with all associations resolved.
	Get(ctx context.Context, id string, includePrivate bool) (*Item, error)

	// Create inserts the item and its associations in one transaction.
	Create(ctx context.Context, it *Item, links Links) error

	// Update rewrites the item and replaces its associations in one
	// transaction. The search vector column regenerates with the row.
	Update(ctx context.Context, it *Item, links Links) error

	// Delete removes the item. Junctions, images, contributions, and
	// challenges cascade.
	Delete(ctx context.Context, id string) error
}
