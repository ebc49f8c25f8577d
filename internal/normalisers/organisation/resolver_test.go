package organisation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

const canterburyURI = "http://opendatacommunities.org/id/district-council/canterbury"

func referenceTable() []domain.Organisation {
	return []domain.Organisation{
		{
			Organisation:         "local-authority-eng:CAT",
			OpenDataCommunities:  "http://opendatacommunities.org/id/district-council/Canterbury",
			StatisticalGeography: "E07000106",
		},
		{
			Organisation:         "development-corporation:Q20648596",
			OpenDataCommunities:  "http://opendatacommunities.org/id/dev-corp/london-legacy",
			StatisticalGeography: "",
		},
	}
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex(referenceTable(), nil)
	require.NotNil(t, idx)
	assert.Positive(t, idx.Len())
}

func TestLookup_Variants(t *testing.T) {
	idx := NewIndex(referenceTable(), nil)

	tests := []struct {
		name  string
		value string
	}{
		{name: "canonical URI", value: canterburyURI},
		{name: "lowercased already", value: canterburyURI},
		{name: "end segment", value: "canterbury"},
		{name: "statistical geography code", value: "e07000106"},
		{name: "derived digital-land URL", value: "https://digital-land.github.io/organisation/local-authority-eng/cat/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, ok := idx.Lookup(tt.value)
			require.True(t, ok)
			assert.Equal(t, canterburyURI, uri)
		})
	}
}

func TestLookup_NoDerivedURLForOtherOrganisations(t *testing.T) {
	idx := NewIndex(referenceTable(), nil)

	_, ok := idx.Lookup("https://digital-land.github.io/organisation/development-corporation:q20648596/")
	assert.False(t, ok)
}

func TestNewIndex_Patches(t *testing.T) {
	t.Run("patch value resolves to canonical URI", func(t *testing.T) {
		idx := NewIndex(referenceTable(), []domain.OrganisationPatch{
			{Value: "Canterbury City Council", Organisation: "local-authority-eng:CAT"},
		})

		uri, ok := idx.Lookup("canterburycitycouncil")
		require.True(t, ok)
		assert.Equal(t, canterburyURI, uri)
	})

	t.Run("later patch overrides earlier", func(t *testing.T) {
		idx := NewIndex(referenceTable(), []domain.OrganisationPatch{
			{Value: "the council", Organisation: "development-corporation:Q20648596"},
			{Value: "the council", Organisation: "local-authority-eng:CAT"},
		})

		uri, ok := idx.Lookup("thecouncil")
		require.True(t, ok)
		assert.Equal(t, canterburyURI, uri)
	})

	t.Run("blank organisation id adds nothing", func(t *testing.T) {
		idx := NewIndex(referenceTable(), []domain.OrganisationPatch{
			{Value: "orphan value", Organisation: ""},
		})

		_, ok := idx.Lookup("orphanvalue")
		assert.False(t, ok)
	})

	t.Run("unknown organisation id adds nothing", func(t *testing.T) {
		idx := NewIndex(referenceTable(), []domain.OrganisationPatch{
			{Value: "mystery value", Organisation: "local-authority-eng:ZZZ"},
		})

		_, ok := idx.Lookup("mysteryvalue")
		assert.False(t, ok)
	})
}

func TestResolver(t *testing.T) {
	resolver := NewResolver(NewIndex(referenceTable(), nil))
	assert.Equal(t, "opendatacommunities-uri", resolver.Datatype())

	t.Run("resolves with whitespace and case noise", func(t *testing.T) {
		got, ok := resolver.Normalise("http://opendatacommunities.org/id/\ndistrict-council/Canterbury")
		require.True(t, ok)
		assert.Equal(t, canterburyURI, got)
	})

	t.Run("resolves via end segment of unknown URL", func(t *testing.T) {
		got, ok := resolver.Normalise("https://www.canterbury.gov.uk/brownfield/Canterbury")
		require.True(t, ok)
		assert.Equal(t, canterburyURI, got)
	})

	t.Run("miss fails", func(t *testing.T) {
		got, ok := resolver.Normalise("Somewhere Else Entirely")
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestEndOfURI(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{value: "http://example.com/a/b/Canterbury", expected: "canterbury"},
		{value: "http://example.com/a/b/Canterbury/", expected: "canterbury"},
		{value: "no-slashes", expected: "no-slashes"},
		{value: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EndOfURI(tt.value))
	}
}
