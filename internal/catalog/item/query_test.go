// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/pkg/pointer"
)

func TestBuildListQuery_DefaultPublic(t *testing.T) {
	sql, args := buildListQuery(Filter{Page: 1}, false)

	assert.Contains(t, sql, "FROM catalog.item i")
	assert.Contains(t, sql, "i.is_public = TRUE")
	assert.Contains(t, sql, "COUNT(*) OVER() AS total_count")
	assert.Contains(t, sql, "0 AS rank")
	assert.NotContains(t, sql, "websearch_to_tsquery")

	// Default ordering: creation bounds ascending with unknowns last, then name.
	assert.Contains(t, sql,
		"ORDER BY i.earliest_creation ASC NULLS LAST, i.latest_creation ASC NULLS LAST, i.name ASC")
	assert.NotContains(t, sql, "rank DESC")

	// Only pagination args: fixed page size, zero offset.
	require.Len(t, args, 2)
	assert.Equal(t, 24, args[0])
	assert.Equal(t, 0, args[1])
}

func TestBuildListQuery_IncludePrivate(t *testing.T) {
	sql, _ := buildListQuery(Filter{Page: 1}, true)
	assert.NotContains(t, sql, "is_public = TRUE\n", "curator listing has no visibility predicate")
	assert.NotContains(t, sql, "WHERE i.is_public")
}

func TestBuildListQuery_FreeTextSearch(t *testing.T) {
	sql, args := buildListQuery(Filter{Q: "funerary stele", Page: 1}, false)

	assert.Contains(t, sql, "websearch_to_tsquery('english', $1)")
	assert.Contains(t, sql, "websearch_to_tsquery('arabic', $1)")
	assert.Contains(t, sql, "i.search_vector @@")
	assert.Contains(t, sql, "ts_rank(i.search_vector,")
	assert.Contains(t, sql, "* 100 AS rank")

	// Rank ordering precedes the default date sort.
	assert.Contains(t, sql, "ORDER BY rank DESC, i.earliest_creation ASC NULLS LAST")

	require.Len(t, args, 3)
	assert.Equal(t, "funerary stele", args[0])
}

func TestBuildListQuery_JunctionFilters(t *testing.T) {
	filter := Filter{
		Category: pointer.To(3),
		Material: pointer.To(8),
		Page:     1,
	}
	sql, args := buildListQuery(filter, false)

	assert.Contains(t, sql,
		"EXISTS (SELECT 1 FROM catalog.item_category j WHERE j.item_id = i.id AND j.category_id = $1)")
	assert.Contains(t, sql,
		"EXISTS (SELECT 1 FROM catalog.item_material j WHERE j.item_id = i.id AND j.material_id = $2)")

	require.Len(t, args, 4)
	assert.Equal(t, 3, args[0])
	assert.Equal(t, 8, args[1])
}

func TestBuildListQuery_InscriptionStyle(t *testing.T) {
	sql, args := buildListQuery(Filter{InscriptionStyle: pointer.To(5), Page: 1}, false)

	assert.Contains(t, sql, "i.inscription_style_id = $1")
	assert.Equal(t, 5, args[0])
}

func TestBuildListQuery_LocationMatchesEitherRole(t *testing.T) {
	sql, args := buildListQuery(Filter{Location: pointer.To(7), Page: 1}, false)

	assert.Contains(t, sql, "(i.findspot_id = $1 OR i.provenance_id = $1)")
	require.Len(t, args, 3)
	assert.Equal(t, 7, args[0])
}

/*
TestBuildListQuery_PeriodPredicate pins down the range-overlap semantics: a
queried century matches items whose bounds bracket it, and items missing
either bound never match.
*/
func TestBuildListQuery_PeriodPredicate(t *testing.T) {
	period := Period(7)
	sql, args := buildListQuery(Filter{Period: &period, Page: 1}, false)

	assert.Contains(t, sql,
		"((i.earliest_creation <= $1 OR i.earliest_creation IS NULL)"+
			" AND (i.latest_creation >= $1 OR i.latest_creation IS NULL)"+
			" AND NOT (i.earliest_creation IS NULL OR i.latest_creation IS NULL))")
	assert.Equal(t, 7, args[0])
}

func TestBuildListQuery_Pagination(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		offset int
	}{
		{"first_page", 1, 0},
		{"third_page", 3, 48},
		{"zero_clamped", 0, 0},
		{"negative_clamped", -5, 0},
		{"huge_page_clamped", maxListPage + 1, (maxListPage - 1) * 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildListQuery(Filter{Page: tt.page}, false)

			require.Len(t, args, 2)
			assert.Equal(t, 24, args[0])
			assert.Equal(t, tt.offset, args[1])
			assert.True(t, strings.HasSuffix(sql, "LIMIT $1 OFFSET $2"))
		})
	}
}

// TestBuildListQuery_TamperedPageNeverUnderflows feeds a page number chosen
// so the naive offset multiplication wraps negative. Postgres rejects a
// negative OFFSET outright, so the clamp must keep the argument in range.
func TestBuildListQuery_TamperedPageNeverUnderflows(t *testing.T) {
	_, args := buildListQuery(Filter{Page: math.MaxInt/24 + 2}, false)

	require.Len(t, args, 2)
	offset, ok := args[1].(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, offset, 0)
	assert.Equal(t, (maxListPage-1)*24, offset)
}

func TestBuildListQuery_SummaryColumns(t *testing.T) {
	sql, _ := buildListQuery(Filter{Page: 1}, false)

	// Lead thumbnail and public image count ride along as scalar subqueries.
	assert.Contains(t, sql, "SELECT im.thumbnail_path FROM catalog.image im")
	assert.Contains(t, sql, "ORDER BY im.sort_order ASC, im.created_at ASC LIMIT 1")
	assert.Contains(t, sql, "(SELECT COUNT(*) FROM catalog.image im WHERE im.item_id = i.id AND im.is_public = TRUE) AS image_count")
}

/*
TestBuildListQuery_CuratorSummariesSeePrivateImages checks that the curator
listing drops the visibility restriction from the thumbnail and image-count
subqueries. An item whose only images are private still shows a thumbnail
and a non-zero count in the back office.
*/
func TestBuildListQuery_CuratorSummariesSeePrivateImages(t *testing.T) {
	sql, _ := buildListQuery(Filter{Page: 1}, true)

	assert.Contains(t, sql,
		"(SELECT COUNT(*) FROM catalog.image im WHERE im.item_id = i.id) AS image_count")
	assert.Contains(t, sql,
		"(SELECT im.thumbnail_path FROM catalog.image im WHERE im.item_id = i.id ORDER BY im.sort_order ASC, im.created_at ASC LIMIT 1)")
	assert.NotContains(t, sql, "im.is_public")
}

func TestBuildListQuery_CombinedPredicatesAreAnded(t *testing.T) {
	filter := Filter{
		Q:        "coin",
		Category: pointer.To(2),
		Location: pointer.To(4),
		Page:     2,
	}
	sql, args := buildListQuery(filter, false)

	// q, category, location, limit, offset.
	require.Len(t, args, 5)
	assert.Equal(t, "coin", args[0])
	assert.Equal(t, 2, args[1])
	assert.Equal(t, 4, args[2])
	assert.Equal(t, 24, args[3])
	assert.Equal(t, 24, args[4])

	assert.Equal(t, 3, strings.Count(sql, "\n  AND "),
		"search, visibility, category, location joined by AND")
}
