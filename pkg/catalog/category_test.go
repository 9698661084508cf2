package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCategories() []Category {
	return []Category{
		{ID: 1, Name: "Fire"},
		{ID: 2, Name: "Water"},
		{ID: 3, Name: "Grass"},
	}
}

func TestLookupByID(t *testing.T) {
	d := NewDirectory(sampleCategories())

	c, ok := d.LookupByID(2)
	require.True(t, ok)
	assert.Equal(t, Category{ID: 2, Name: "Water"}, c)
}

func TestLookupByIDMissingReturnsNone(t *testing.T) {
	d := NewDirectory(sampleCategories())

	c, ok := d.LookupByID(999)
	assert.False(t, ok)
	assert.Equal(t, Category{}, c)
}

func TestNilDirectoryIsEmpty(t *testing.T) {
	var d *Directory

	_, ok := d.LookupByID(1)
	assert.False(t, ok)
	_, ok = d.LookupByName("Fire")
	assert.False(t, ok)
	assert.Empty(t, d.All())
	assert.Zero(t, d.Len())
	assert.Empty(t, d.CategoriesOf(Entry{CategoryIDs: []int{1}}))
}

func TestDuplicateIDsFirstWins(t *testing.T) {
	d := NewDirectory([]Category{
		{ID: 7, Name: "Dragon"},
		{ID: 7, Name: "Fairy"},
	})

	c, ok := d.LookupByID(7)
	require.True(t, ok)
	assert.Equal(t, "Dragon", c.Name)
	assert.Equal(t, 2, d.Len())
}

func TestLookupByName(t *testing.T) {
	d := NewDirectory(sampleCategories())

	c, ok := d.LookupByName("Grass")
	require.True(t, ok)
	assert.Equal(t, 3, c.ID)

	_, ok = d.LookupByName("grass")
	assert.False(t, ok, "exact lookup must be case sensitive")

	c, ok = d.LookupByNameFold("  grass ")
	require.True(t, ok)
	assert.Equal(t, 3, c.ID)
}

func TestCategoriesOfSkipsUnresolved(t *testing.T) {
	d := NewDirectory(sampleCategories())
	e := Entry{ID: 1, Name: "Bulbasaur", CategoryIDs: []int{3, 42, 1}}

	assert.Equal(t, []Category{{ID: 3, Name: "Grass"}, {ID: 1, Name: "Fire"}}, d.CategoriesOf(e))
	assert.Equal(t, []string{"Grass", "Fire"}, d.CategoryNames(e))
}

func TestResolveByIDOrName(t *testing.T) {
	d := NewDirectory(sampleCategories())

	c, ok := d.Resolve("2")
	require.True(t, ok)
	assert.Equal(t, "Water", c.Name)

	c, ok = d.Resolve("fire")
	require.True(t, ok)
	assert.Equal(t, 1, c.ID)

	_, ok = d.Resolve("999")
	assert.False(t, ok)
	_, ok = d.Resolve("Shadow")
	assert.False(t, ok)
}
