// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"fmt"
	"strings"

	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/database/schema"
)

// maxListPage caps the page number accepted by the listing. Anything past it
// is an empty page no real collection can reach; the cap keeps the OFFSET
// arithmetic from overflowing on a tampered query string.
const maxListPage = 1_000_000

// buildListQuery translates a [Filter] into the paginated search SQL and its
// argument list. It is a pure function so the predicate and ordering rules
// can be tested without a database.
//
// # Shape
//
// The base constraint is visibility (lifted for curators). Each present
// filter field appends one AND predicate: tag filters become EXISTS probes
// against their junction table, the location filter matches findspot or
// provenance, and the period filter is a range-overlap test that requires
// both creation bounds to be set. A free-text query is matched against the
// generated search vector in both text-search configurations and switches
// the ordering from the default date sort to rank.
//
// The total match count rides along as a window aggregate so that one
// round-trip serves both the page and its pagination metadata.
func buildListQuery(filter Filter, includePrivate bool) (string, []any) {
	t := schema.CatalogItem
	img := schema.CatalogImage

	var (
		builder    strings.Builder
		predicates []string
		args       []any
	)

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	rank := "0 AS rank"
	if filter.HasSearch() {
		q := arg(filter.Q)
		tsquery := fmt.Sprintf(
			"(websearch_to_tsquery('english', %s) || websearch_to_tsquery('arabic', %s))", q, q)
		predicates = append(predicates,
			fmt.Sprintf("i.%s @@ %s", t.SearchVector, tsquery))
		rank = fmt.Sprintf("ts_rank(i.%s, %s) * %d AS rank",
			t.SearchVector, tsquery, constants.SearchRankScale)
	}

	if !includePrivate {
		predicates = append(predicates, fmt.Sprintf("i.%s = TRUE", t.IsPublic))
	}

	junctions := []struct {
		table  schema.JunctionTable
		termID *int
	}{
		{schema.ItemCategory, filter.Category},
		{schema.ItemCulture, filter.Culture},
		{schema.ItemLanguage, filter.Language},
		{schema.ItemTechnique, filter.Technique},
		{schema.ItemMaterial, filter.Material},
		{schema.ItemSubject, filter.Subject},
	}
	for _, junction := range junctions {
		if junction.termID == nil {
			continue
		}
		predicates = append(predicates, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s j WHERE j.%s = i.%s AND j.%s = %s)",
			junction.table.Table, junction.table.ItemID, t.ID,
			junction.table.TermID, arg(*junction.termID),
		))
	}

	if filter.InscriptionStyle != nil {
		predicates = append(predicates,
			fmt.Sprintf("i.%s = %s", t.InscriptionStyleID, arg(*filter.InscriptionStyle)))
	}

	if filter.Location != nil {
		placeholder := arg(*filter.Location)
		predicates = append(predicates, fmt.Sprintf(
			"(i.%s = %s OR i.%s = %s)",
			t.FindspotID, placeholder, t.ProvenanceID, placeholder,
		))
	}

	if filter.Period != nil {
		placeholder := arg(int(*filter.Period))
		predicates = append(predicates, fmt.Sprintf(
			"((i.%[1]s <= %[3]s OR i.%[1]s IS NULL) AND (i.%[2]s >= %[3]s OR i.%[2]s IS NULL)"+
				" AND NOT (i.%[1]s IS NULL OR i.%[2]s IS NULL))",
			t.EarliestCreation, t.LatestCreation, placeholder,
		))
	}

	// Curators see every attachment, so the thumbnail and count subqueries
	// only restrict to public images on the public surface.
	imageVisibility := ""
	if !includePrivate {
		imageVisibility = fmt.Sprintf(" AND im.%s = TRUE", img.IsPublic)
	}

	fmt.Fprintf(&builder, `SELECT
	i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s,
	(SELECT im.%s FROM %s im WHERE im.%s = i.%s%s ORDER BY im.%s ASC, im.%s ASC LIMIT 1) AS thumbnail_path,
	(SELECT COUNT(*) FROM %s im WHERE im.%s = i.%s%s) AS image_count,
	%s,
	COUNT(*) OVER() AS total_count
FROM %s i`,
		t.ID, t.Name, t.NameAr, t.IsPublic, t.DisplayDate, t.EarliestCreation, t.LatestCreation,
		img.ThumbnailPath, img.Table, img.ItemID, t.ID, imageVisibility, img.SortOrder, img.CreatedAt,
		img.Table, img.ItemID, t.ID, imageVisibility,
		rank,
		t.Table,
	)

	if len(predicates) > 0 {
		builder.WriteString("\nWHERE ")
		builder.WriteString(strings.Join(predicates, "\n  AND "))
	}

	builder.WriteString("\nORDER BY ")
	if filter.HasSearch() {
		builder.WriteString("rank DESC, ")
	}
	fmt.Fprintf(&builder, "i.%s ASC NULLS LAST, i.%s ASC NULLS LAST, i.%s ASC",
		t.EarliestCreation, t.LatestCreation, t.Name)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if page > maxListPage {
		page = maxListPage
	}
	fmt.Fprintf(&builder, "\nLIMIT %s OFFSET %s",
		arg(constants.PublicItemPageSize),
		arg((page-1)*constants.PublicItemPageSize),
	)

	return builder.String(), args
}
