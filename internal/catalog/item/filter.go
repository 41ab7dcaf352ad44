// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter is the flat set of optional public search constraints. A nil or
// zero field imposes no constraint.
type Filter struct {
	Q string

	Category         *int
	Culture          *int
	InscriptionStyle *int
	Language         *int
	Location         *int
	Technique        *int
	Material         *int
	Subject          *int

	Period *Period

	Page int
}

// FilterFromQuery parses search parameters from the URL query string.
//
// Malformed values are treated as absent rather than rejected: a visitor
// tampering with the query string gets an unfiltered result, not an error.
func FilterFromQuery(values url.Values) Filter {
	filter := Filter{
		Q:    strings.TrimSpace(values.Get("q")),
		Page: 1,
	}

	filter.Category = positiveInt(values.Get("category"))
	filter.Culture = positiveInt(values.Get("culture"))
	filter.InscriptionStyle = positiveInt(values.Get("inscription_style"))
	filter.Language = positiveInt(values.Get("language"))
	filter.Location = positiveInt(values.Get("location"))
	filter.Technique = positiveInt(values.Get("technique"))
	filter.Material = positiveInt(values.Get("material"))
	filter.Subject = positiveInt(values.Get("subject"))

	if raw := positiveInt(values.Get("period")); raw != nil {
		period := Period(*raw)
		if period.Valid() {
			filter.Period = &period
		}
	}

	if page := positiveInt(values.Get("page")); page != nil {
		filter.Page = *page
	}

	return filter
}

// HasSearch reports whether a free-text query is present, which switches
// ordering from the default date sort to relevance ranking.
func (f Filter) HasSearch() bool {
	return f.Q != ""
}

func positiveInt(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return nil
	}
	return &value
}
