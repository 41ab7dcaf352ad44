// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/catalog/item"
)

func TestFilterFromQuery_Defaults(t *testing.T) {
	filter := item.FilterFromQuery(url.Values{})

	assert.Empty(t, filter.Q)
	assert.False(t, filter.HasSearch())
	assert.Nil(t, filter.Category)
	assert.Nil(t, filter.Period)
	assert.Equal(t, 1, filter.Page)
}

func TestFilterFromQuery_AllFields(t *testing.T) {
	values := url.Values{
		"q":                 {"  marble statue  "},
		"category":          {"3"},
		"culture":           {"5"},
		"inscription_style": {"7"},
		"language":          {"2"},
		"location":          {"11"},
		"technique":         {"4"},
		"material":          {"6"},
		"subject":           {"9"},
		"period":            {"14"},
		"page":              {"2"},
	}

	filter := item.FilterFromQuery(values)

	assert.Equal(t, "marble statue", filter.Q)
	assert.True(t, filter.HasSearch())

	require.NotNil(t, filter.Category)
	assert.Equal(t, 3, *filter.Category)
	require.NotNil(t, filter.Location)
	assert.Equal(t, 11, *filter.Location)
	require.NotNil(t, filter.Period)
	assert.Equal(t, item.Period(14), *filter.Period)
	assert.Equal(t, 2, filter.Page)
}

/*
TestFilterFromQuery_MalformedValues checks that tampered query strings are
treated as absent constraints, never as errors.
*/
func TestFilterFromQuery_MalformedValues(t *testing.T) {
	values := url.Values{
		"category": {"banana"},
		"culture":  {"-2"},
		"material": {"0"},
		"period":   {"99"},
		"page":     {"not-a-number"},
	}

	filter := item.FilterFromQuery(values)

	assert.Nil(t, filter.Category)
	assert.Nil(t, filter.Culture)
	assert.Nil(t, filter.Material)
	assert.Nil(t, filter.Period, "out-of-range period is dropped")
	assert.Equal(t, 1, filter.Page)
}

func TestFilterFromQuery_PeriodBounds(t *testing.T) {
	for _, raw := range []string{"1", "21"} {
		filter := item.FilterFromQuery(url.Values{"period": {raw}})
		require.NotNil(t, filter.Period, raw)
	}
	for _, raw := range []string{"0", "22", "-1"} {
		filter := item.FilterFromQuery(url.Values{"period": {raw}})
		assert.Nil(t, filter.Period, raw)
	}
}
