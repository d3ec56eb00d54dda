package catalog

import (
	"sort"
	"strings"

	"go-scancollect-backend/internal/domain"
)

// Apply filters and orders a card list. Pure: the input
// slice is never mutated, and re-applying the same spec to the output is a
// no-op. Equal sort keys keep their input order regardless of direction.
func Apply(cards []domain.UnifiedCard, spec domain.FilterSortSpec) []domain.UnifiedCard {
	filtered := make([]domain.UnifiedCard, 0, len(cards))
	search := strings.ToLower(spec.SearchTerm)

	for _, card := range cards {
		if !matchesSearch(card, search) {
			continue
		}
		if spec.RarityFilter != "" && !strings.EqualFold(card.Rarity, spec.RarityFilter) {
			continue
		}
		filtered = append(filtered, card)
	}

	sortCards(filtered, spec.SortField, spec.SortDirection)
	return filtered
}

func matchesSearch(card domain.UnifiedCard, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Name), search) ||
		strings.Contains(strings.ToLower(card.Description), search) ||
		strings.Contains(strings.ToLower(card.SetIdentifier), search)
}

func sortCards(cards []domain.UnifiedCard, field domain.SortField, direction domain.SortDirection) {
	if field == domain.SortByCreated {
		sort.SliceStable(cards, func(i, j int) bool {
			a, b := cards[i].CreatedAt.UnixNano(), cards[j].CreatedAt.UnixNano()
			if direction == domain.SortDescending {
				return a > b
			}
			return a < b
		})
		return
	}

	key := textProjection(field)
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := key(cards[i]), key(cards[j])
		if direction == domain.SortDescending {
			return a > b
		}
		return a < b
	})
}

// textProjection returns the lower-cased sort key for a text field. Unknown
// fields sort by name; absent values project to the empty string.
func textProjection(field domain.SortField) func(domain.UnifiedCard) string {
	switch field {
	case domain.SortByRarity:
		return func(c domain.UnifiedCard) string { return strings.ToLower(c.Rarity) }
	case domain.SortBySetCode:
		return func(c domain.UnifiedCard) string { return strings.ToLower(c.SetIdentifier) }
	default:
		return func(c domain.UnifiedCard) string { return strings.ToLower(c.Name) }
	}
}
