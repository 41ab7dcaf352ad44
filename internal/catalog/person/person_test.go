// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package person_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/pkg/pointer"
)

func TestPerson_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		fullname string
		citation *string
		want     string
	}{
		{"citation_preferred", "Jane Smith", pointer.To("Smith, J."), "Smith, J."},
		{"empty_citation_falls_back", "Jane Smith", pointer.To(""), "Jane Smith"},
		{"nil_citation_falls_back", "Jane Smith", nil, "Jane Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := person.Person{Fullname: tt.fullname, CitationName: tt.citation}
			assert.Equal(t, tt.want, p.DisplayName())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestContribution_HasRole(t *testing.T) {
	c := person.Contribution{MarcRelators: []string{"aut", "edt"}}

	assert.True(t, c.HasRole(person.RelatorAuthor))
	assert.True(t, c.HasRole("edt"))
	assert.False(t, c.HasRole("pht"))

	empty := person.Contribution{}
	assert.False(t, empty.HasRole(person.RelatorAuthor))
}

func TestContribution_RoleLabels(t *testing.T) {
	c := person.Contribution{MarcRelators: []string{"aut", "zzz", "pht"}}

	labels := c.RoleLabels()
	assert.Equal(t, []string{"Author", "Photographer"}, labels,
		"unknown codes are skipped")
}

func TestRelatorLabel(t *testing.T) {
	label, ok := person.RelatorLabel("cur")
	require.True(t, ok)
	assert.Equal(t, "Curator", label)

	_, ok = person.RelatorLabel("nope")
	assert.False(t, ok)
}

func TestIsRelator(t *testing.T) {
	assert.True(t, person.IsRelator("aut"))
	assert.True(t, person.IsRelator("trl"))
	assert.False(t, person.IsRelator(""))
	assert.False(t, person.IsRelator("AUT"))
}

func TestRelators_SortedByLabel(t *testing.T) {
	relators := person.Relators()
	require.NotEmpty(t, relators)

	labels := make([]string, len(relators))
	for i, relator := range relators {
		labels[i] = relator.Label
	}
	assert.True(t, sort.StringsAreSorted(labels))

	// Every entry round-trips through the lookup.
	for _, relator := range relators {
		label, ok := person.RelatorLabel(relator.Code)
		require.True(t, ok, relator.Code)
		assert.Equal(t, relator.Label, label)
	}
}
