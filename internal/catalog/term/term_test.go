// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/catalog/term"
)

func TestParseKind(t *testing.T) {
	for _, kind := range term.Kinds {
		parsed, ok := term.ParseKind(string(kind))
		require.True(t, ok, string(kind))
		assert.Equal(t, kind, parsed)
	}

	_, ok := term.ParseKind("dynasty")
	assert.False(t, ok)

	_, ok = term.ParseKind("")
	assert.False(t, ok)
}

func TestKind_Table(t *testing.T) {
	assert.Equal(t, "catalog.category", term.KindCategory.Table().Table)
	assert.Equal(t, "catalog.inscription_style", term.KindInscriptionStyle.Table().Table)
	assert.Equal(t, "catalog.location", term.KindLocation.Table().Table)
}

func TestKind_ColumnGroups(t *testing.T) {
	assert.True(t, term.KindLocation.HasAliases())
	assert.True(t, term.KindLocation.HasGeo())

	assert.True(t, term.KindSubject.HasAliases())
	assert.False(t, term.KindSubject.HasGeo())

	assert.False(t, term.KindCategory.HasAliases())
	assert.False(t, term.KindCategory.HasGeo())
}

func TestTerm_AsRef(t *testing.T) {
	record := term.Term{ID: 4, Label: "Limestone", Slug: "limestone"}

	ref := record.AsRef()
	assert.Equal(t, term.Ref{ID: 4, Label: "Limestone", Slug: "limestone"}, ref)
	assert.Equal(t, "Limestone", record.String())
}
