package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	store := NewStore()

	results := store.Search("ro", SearchLimit)
	require.NotEmpty(t, results)
	names := make([]string, 0, len(results))
	for _, g := range results {
		names = append(names, g.Name)
	}
	assert.Contains(t, names, "Roblox")

	upper := store.Search("RO", SearchLimit)
	assert.Equal(t, results, upper)
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.Search("", SearchLimit))
	assert.Empty(t, store.Search("   ", SearchLimit))
}

func TestSearchHonorsLimit(t *testing.T) {
	store := NewStore()

	// a single letter hits several names; the cap must hold
	results := store.Search("o", 2)
	assert.Len(t, results, 2)
}

func TestGamesFilterByCategory(t *testing.T) {
	store := NewStore()

	shooters := store.Games("Shooter", "")
	require.NotEmpty(t, shooters)
	for _, g := range shooters {
		assert.Equal(t, "Shooter", g.Category)
	}

	// "all" and empty both mean no category filter
	assert.Equal(t, store.Games("", ""), store.Games("all", ""))
}

func TestGamesFilterBySearch(t *testing.T) {
	store := NewStore()

	results := store.Games("", "mine")
	require.Len(t, results, 1)
	assert.Equal(t, "Minecraft", results[0].Name)

	// unlike Search, an empty search term returns the whole catalog
	assert.Len(t, store.Games("", ""), len(store.games))
}

func TestCategoriesAreStatic(t *testing.T) {
	store := NewStore()

	categories := store.Categories()
	require.Len(t, categories, 4)
	assert.Equal(t, "MMORPG", categories[0].Name)
}
