// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/catalog/item"
	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/pkg/pointer"
)

/*
TestPeriod_Label verifies the ordinal century rendering, including the
11th-13th special case.
*/
func TestPeriod_Label(t *testing.T) {
	tests := []struct {
		period item.Period
		label  string
	}{
		{1, "1st Century"},
		{2, "2nd Century"},
		{3, "3rd Century"},
		{4, "4th Century"},
		{11, "11th Century"},
		{12, "12th Century"},
		{13, "13th Century"},
		{21, "21st Century"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.period.Label())
		})
	}
}

func TestPeriod_Valid(t *testing.T) {
	assert.False(t, item.Period(0).Valid())
	assert.True(t, item.Period(1).Valid())
	assert.True(t, item.Period(21).Valid())
	assert.False(t, item.Period(22).Valid())
	assert.False(t, item.Period(-3).Valid())
}

func TestPeriodChoices(t *testing.T) {
	choices := item.PeriodChoices()
	require.Len(t, choices, 21)
	assert.Equal(t, 1, choices[0].Value)
	assert.Equal(t, "1st Century", choices[0].Label)
	assert.Equal(t, 21, choices[20].Value)
	assert.Equal(t, "21st Century", choices[20].Label)
}

/*
TestItem_DisplayDate covers the override, both-bounds, single-bound, and
unknown rendering branches.
*/
func TestItem_DisplayDate(t *testing.T) {
	period := func(p item.Period) *item.Period { return &p }

	tests := []struct {
		name     string
		override *string
		earliest *item.Period
		latest   *item.Period
		want     string
	}{
		{"override_wins", pointer.To("ca. 250 CE"), period(3), period(4), "ca. 250 CE"},
		{"empty_override_ignored", pointer.To(""), period(3), period(4), "3rd Century - 4th Century"},
		{"both_bounds", nil, period(1), period(2), "1st Century - 2nd Century"},
		{"same_bound_twice", nil, period(5), period(5), "5th Century - 5th Century"},
		{"earliest_only", nil, period(7), nil, "7th Century"},
		{"latest_only", nil, nil, period(9), "9th Century"},
		{"unknown", nil, nil, nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := item.Item{
				DisplayDateOverride: tt.override,
				EarliestCreation:    tt.earliest,
				LatestCreation:      tt.latest,
			}
			assert.Equal(t, tt.want, it.DisplayDate())
		})
	}
}

/*
TestItem_CitationAuthors checks that only author-role contributors are cited,
with citation names preferred and a trailing period appended when missing.
*/
func TestItem_CitationAuthors(t *testing.T) {
	it := item.Item{
		Contributions: []person.Contribution{
			{
				MarcRelators: []string{"aut", "edt"},
				Person:       &person.Person{Fullname: "Jane Smith", CitationName: pointer.To("Smith, J.")},
			},
			{
				MarcRelators: []string{"pht"},
				Person:       &person.Person{Fullname: "Sam Lens"},
			},
			{
				MarcRelators: []string{"aut"},
				Person:       &person.Person{Fullname: "Omar Haddad"},
			},
			{
				// Contribution without a loaded person is skipped.
				MarcRelators: []string{"aut"},
			},
		},
	}

	authors := it.CitationAuthors()
	require.Len(t, authors, 2)
	assert.Equal(t, "Smith, J.", authors[0])
	assert.Equal(t, "Omar Haddad.", authors[1])
}

func TestItem_CitationAuthors_Empty(t *testing.T) {
	it := item.Item{}
	assert.Empty(t, it.CitationAuthors())
}

func TestItem_ImageAccessors(t *testing.T) {
	it := item.Item{
		Images: []media.Image{
			{ID: "a", IsPublic: false},
			{ID: "b", IsPublic: true},
			{ID: "c", IsPublic: true},
			{ID: "d", IsPublic: false},
		},
	}

	public := it.PublicImages()
	require.Len(t, public, 2)
	assert.Equal(t, "b", public[0].ID)
	assert.Equal(t, "c", public[1].ID)

	first := it.FirstPublicImage()
	require.NotNil(t, first)
	assert.Equal(t, "b", first.ID)

	assert.Equal(t, 2, it.PublicImageCount())
	assert.Equal(t, 2, it.PrivateImageCount())
	assert.Len(t, it.PrivateImages(), 2)
}

func TestItem_FirstPublicImage_None(t *testing.T) {
	it := item.Item{Images: []media.Image{{ID: "a", IsPublic: false}}}
	assert.Nil(t, it.FirstPublicImage())
}
