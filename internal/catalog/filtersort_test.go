package catalog_test

import (
	"testing"

	"go-scancollect-backend/internal/catalog"
	"go-scancollect-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func names(cards []domain.UnifiedCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestApplyFiltering(t *testing.T) {
	cards := []domain.UnifiedCard{
		{ID: "1", Name: "Dragon", Rarity: "Rare", SetIdentifier: "OP01"},
		{ID: "2", Name: "Apple", Rarity: "Common", SetIdentifier: "OP02"},
		{ID: "3", Name: "Dragoon", Rarity: "Rare", SetIdentifier: "OP01", Description: "a dragon rider"},
	}

	t.Run("Search matches name, description and set", func(t *testing.T) {
		got := catalog.Apply(cards, domain.FilterSortSpec{SearchTerm: "drag", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.Equal(t, []string{"Dragon", "Dragoon"}, names(got))

		got = catalog.Apply(cards, domain.FilterSortSpec{SearchTerm: "op02", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.Equal(t, []string{"Apple"}, names(got))

		got = catalog.Apply(cards, domain.FilterSortSpec{SearchTerm: "rider", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.Equal(t, []string{"Dragoon"}, names(got))
	})

	t.Run("Rarity filter is case-insensitive exact match", func(t *testing.T) {
		got := catalog.Apply(cards, domain.FilterSortSpec{RarityFilter: "rare", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.Equal(t, []string{"Dragon", "Dragoon"}, names(got))
	})

	t.Run("Tightening a filter never grows the result", func(t *testing.T) {
		loose := catalog.Apply(cards, domain.FilterSortSpec{SearchTerm: "drag", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		tight := catalog.Apply(cards, domain.FilterSortSpec{SearchTerm: "drag", RarityFilter: "Rare", SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.LessOrEqual(t, len(tight), len(loose))
	})

	t.Run("Empty input yields empty output", func(t *testing.T) {
		got := catalog.Apply(nil, domain.FilterSortSpec{SortField: domain.SortByName, SortDirection: domain.SortAscending})
		assert.Empty(t, got)
	})
}

func TestApplyIdempotence(t *testing.T) {
	cards := []domain.UnifiedCard{
		{ID: "1", Name: "Zoro", Rarity: "SR"},
		{ID: "2", Name: "Luffy", Rarity: "L"},
		{ID: "3", Name: "Nami", Rarity: "R"},
	}
	spec := domain.FilterSortSpec{SearchTerm: "", SortField: domain.SortByName, SortDirection: domain.SortDescending}

	once := catalog.Apply(cards, spec)
	twice := catalog.Apply(once, spec)
	assert.Equal(t, once, twice)
}

func TestApplySortStability(t *testing.T) {
	// Identical rarity keys: input order must survive both directions.
	cards := []domain.UnifiedCard{
		{ID: "a", Name: "First", Rarity: "Rare"},
		{ID: "b", Name: "Second", Rarity: "Rare"},
		{ID: "c", Name: "Third", Rarity: "Rare"},
	}

	for _, dir := range []domain.SortDirection{domain.SortAscending, domain.SortDescending} {
		got := catalog.Apply(cards, domain.FilterSortSpec{SortField: domain.SortByRarity, SortDirection: dir})
		assert.Equal(t, []string{"First", "Second", "Third"}, names(got), "direction %s", dir)
	}
}

func TestApplySortRoundTrip(t *testing.T) {
	// With no duplicate keys, ascending reversed equals descending.
	cards := []domain.UnifiedCard{
		{ID: "1", Name: "Mew"},
		{ID: "2", Name: "Abra"},
		{ID: "3", Name: "Zubat"},
		{ID: "4", Name: "Eevee"},
	}

	asc := catalog.Apply(cards, domain.FilterSortSpec{SortField: domain.SortByName, SortDirection: domain.SortAscending})
	desc := catalog.Apply(cards, domain.FilterSortSpec{SortField: domain.SortByName, SortDirection: domain.SortDescending})

	reversed := make([]domain.UnifiedCard, len(asc))
	for i, c := range asc {
		reversed[len(asc)-1-i] = c
	}
	assert.Equal(t, desc, reversed)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	cards := []domain.UnifiedCard{
		{ID: "1", Name: "Zubat"},
		{ID: "2", Name: "Abra"},
	}
	_ = catalog.Apply(cards, domain.FilterSortSpec{SortField: domain.SortByName, SortDirection: domain.SortAscending})
	assert.Equal(t, "Zubat", cards[0].Name)
	assert.Equal(t, "Abra", cards[1].Name)
}
