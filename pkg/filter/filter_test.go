package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/pokedex/pkg/catalog"
)

var (
	fire  = catalog.Category{ID: 1, Name: "Fire"}
	water = catalog.Category{ID: 2, Name: "Water"}
	grass = catalog.Category{ID: 3, Name: "Grass"}

	charmander = catalog.Entry{ID: 1, Name: "Charmander", CategoryIDs: []int{1}}
	squirtle   = catalog.Entry{ID: 2, Name: "Squirtle", CategoryIDs: []int{2}}
	bulbasaur  = catalog.Entry{ID: 3, Name: "Bulbasaur", CategoryIDs: []int{3, 1}}
)

func TestCategoriesEmptySearchIsIdentity(t *testing.T) {
	cats := []catalog.Category{water, fire, grass}

	for _, search := range []string{"", "   ", "\t\n"} {
		got := Categories(cats, search)
		require.Equal(t, cats, got, "search %q", search)
		assert.Same(t, &cats[0], &got[0], "expected the input slice back for %q", search)
	}
}

func TestCategoriesSubstringMatch(t *testing.T) {
	cats := []catalog.Category{fire, water}

	assert.Equal(t, []catalog.Category{fire}, Categories(cats, "fir"))
	assert.Equal(t, []catalog.Category{fire}, Categories(cats, "  FIR "))
	assert.Equal(t, []catalog.Category{water}, Categories(cats, "ate"))
	assert.Empty(t, Categories(cats, "rock"))
}

func TestCategoriesPreservesOrder(t *testing.T) {
	cats := []catalog.Category{
		{ID: 9, Name: "Rock"},
		{ID: 4, Name: "Ground"},
		{ID: 5, Name: "Bug"},
		{ID: 6, Name: "Dragon"},
	}

	got := Categories(cats, "r")
	assert.Equal(t, []catalog.Category{cats[0], cats[1], cats[3]}, got)
}

func TestCategoriesOnlyReturnsMatches(t *testing.T) {
	cats := []catalog.Category{fire, water, grass, {ID: 4, Name: "Ghost"}}
	for _, search := range []string{"g", "AS", "o", "w", "zz"} {
		needle := Normalize(search)
		for _, c := range Categories(cats, search) {
			assert.Contains(t, Normalize(c.Name), needle)
		}
	}
}

func TestFoldingIsUnicodeAware(t *testing.T) {
	cats := []catalog.Category{{ID: 1, Name: "Straße"}, {ID: 2, Name: "ÉLECTRIQUE"}}

	assert.Equal(t, cats[:1], Categories(cats, "STRASSE"))
	assert.Equal(t, cats[1:], Categories(cats, "électr"))
}

func TestEntriesSelectedCategoryIgnoresSearch(t *testing.T) {
	entries := []catalog.Entry{charmander, squirtle, bulbasaur}

	for _, search := range []string{"", "char", "anything", "SQUIRTLE"} {
		got := Entries(entries, search, &water)
		assert.Equal(t, []catalog.Entry{squirtle}, got, "search %q", search)
	}
	assert.Equal(t, []catalog.Entry{charmander, bulbasaur}, Entries(entries, "squirt", &fire))
}

func TestEntriesSelectedCategoryWithoutMembers(t *testing.T) {
	entries := []catalog.Entry{charmander, squirtle}

	got := Entries(entries, "", &catalog.Category{ID: 42, Name: "Steel"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEntriesTextSearch(t *testing.T) {
	entries := []catalog.Entry{charmander, squirtle, bulbasaur}

	assert.Equal(t, []catalog.Entry{charmander}, Entries(entries, "char", nil))
	assert.Equal(t, entries, Entries(entries, "R", nil))
	assert.Equal(t, []catalog.Entry{squirtle}, Entries(entries, "irt", nil))
	assert.Equal(t, []catalog.Entry{bulbasaur}, Entries(entries, " BULBA ", nil))
}

func TestEntriesEmptySearchNoCategoryIsIdentity(t *testing.T) {
	entries := []catalog.Entry{squirtle, charmander}

	got := Entries(entries, " ", nil)
	require.Len(t, got, 2)
	assert.Same(t, &entries[0], &got[0])
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "fire", Normalize("  FiRe "))
	assert.Equal(t, "", Normalize("   "))
}
