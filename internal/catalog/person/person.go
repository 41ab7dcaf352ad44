// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package person implements the registry of people who contributed to catalog
items.

A person is stored once and linked to items through contributions. Each
contribution carries one or more MARC relator codes describing the role the
person played for that item (author, editor, photographer, and so on).
*/
package person

import "time"

// Person is one registry entry.
//
// CitationName, when present, is the scholarly citation form ("Last, First")
// preferred over Fullname in generated citations.
type Person struct {
	ID           int       `json:"id"`
	Fullname     string    `json:"fullname"`
	CitationName *string   `json:"citation_name"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// DisplayName returns the citation name when set, otherwise the full name.
func (p *Person) DisplayName() string {
	if p.CitationName != nil && *p.CitationName != "" {
		return *p.CitationName
	}
	return p.Fullname
}

// String returns the display string for the person.
func (p *Person) String() string {
	return p.DisplayName()
}

// Contribution links a person to an item with one or more relator roles.
type Contribution struct {
	ID           int      `json:"id"`
	ItemID       string   `json:"item_id"`
	PersonID     int      `json:"person_id"`
	MarcRelators []string `json:"marc_relators"`

	// Person is populated on reads for display; ignored on writes.
	Person *Person `json:"person,omitempty"`
}

// HasRole reports whether the contribution carries the given relator code.
func (c *Contribution) HasRole(code string) bool {
	for _, relator := range c.MarcRelators {
		if relator == code {
			return true
		}
	}
	return false
}

// RoleLabels returns the human-readable labels for the contribution's
// relator codes, skipping codes outside the supported set.
func (c *Contribution) RoleLabels() []string {
	labels := make([]string, 0, len(c.MarcRelators))
	for _, code := range c.MarcRelators {
		if label, ok := RelatorLabel(code); ok {
			labels = append(labels, label)
		}
	}
	return labels
}
