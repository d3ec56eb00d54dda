package catalog_test

import (
	"testing"

	"go-scancollect-backend/internal/catalog"
	"go-scancollect-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTotality(t *testing.T) {
	t.Run("Should never panic on empty payload", func(t *testing.T) {
		card := catalog.Normalize(map[string]interface{}{}, domain.SourcePlain)
		assert.Equal(t, "Unknown", card.Name)
		assert.Equal(t, "Unknown", card.Rarity)
		assert.Equal(t, "", card.SetIdentifier)
		assert.Equal(t, "", card.ImageURL)
	})

	t.Run("Should coerce nested objects to strings", func(t *testing.T) {
		raw := map[string]interface{}{
			"name":   map[string]interface{}{"value": "Pikachu"},
			"rarity": map[string]interface{}{"label": "Rare"},
			"set":    map[string]interface{}{"name": "Base"},
		}
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Equal(t, "Pikachu", card.Name)
		assert.Equal(t, "Rare", card.Rarity)
		assert.Equal(t, "Base", card.SetIdentifier)
	})

	t.Run("Should recurse into first array element", func(t *testing.T) {
		raw := map[string]interface{}{
			"rarity": []interface{}{
				map[string]interface{}{"name": "Secret Rare"},
				map[string]interface{}{"name": "Rare"},
			},
		}
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Equal(t, "Secret Rare", card.Rarity)
	})

	t.Run("Should stringify numeric values", func(t *testing.T) {
		raw := map[string]interface{}{
			"name":   float64(25),
			"number": float64(7.5),
		}
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Equal(t, "25", card.Name)
		assert.Equal(t, "7.5", card.Number)
	})

	t.Run("Should fall back to sentinel on nil and empty containers", func(t *testing.T) {
		raw := map[string]interface{}{
			"name":   nil,
			"rarity": []interface{}{},
			"set":    map[string]interface{}{"irrelevant": "x"},
		}
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Equal(t, "Unknown", card.Name)
		assert.Equal(t, "Unknown", card.Rarity)
		assert.Equal(t, "", card.SetIdentifier)
	})
}

func TestNormalizeImagePriority(t *testing.T) {
	t.Run("Should prefer images.large", func(t *testing.T) {
		raw := map[string]interface{}{
			"images":    map[string]interface{}{"large": "l.png", "small": "s.png"},
			"image_url": "flat.png",
		}
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Equal(t, "l.png", card.ImageURL)
	})

	t.Run("Should fall through small then flat", func(t *testing.T) {
		raw := map[string]interface{}{
			"images": map[string]interface{}{"small": "s.png"},
		}
		assert.Equal(t, "s.png", catalog.Normalize(raw, domain.SourcePlain).ImageURL)

		raw = map[string]interface{}{"image_url": "flat.png"}
		assert.Equal(t, "flat.png", catalog.Normalize(raw, domain.SourcePlain).ImageURL)
	})
}

func TestNormalizeEndToEnd(t *testing.T) {
	raw := map[string]interface{}{
		"name":     map[string]interface{}{"value": "Pikachu"},
		"images":   map[string]interface{}{"small": "a.png"},
		"set_code": "BASE",
		"rarity":   "Rare",
	}
	card := catalog.Normalize(raw, domain.SourcePlain)
	assert.Equal(t, "Pikachu", card.Name)
	assert.Equal(t, "a.png", card.ImageURL)
	assert.Equal(t, "BASE", card.SetIdentifier)
	assert.Equal(t, "Rare", card.Rarity)
}

func TestNormalizePriceSummary(t *testing.T) {
	raw := map[string]interface{}{
		"name": "Sample",
		"variants": []interface{}{
			map[string]interface{}{"condition": "NM", "price": 24.50},
			map[string]interface{}{"condition": "LP", "price": 17.25},
		},
	}

	t.Run("Pricing source summarizes variants", func(t *testing.T) {
		card := catalog.Normalize(raw, domain.SourcePricing)
		if assert.NotNil(t, card.PriceSummary) {
			assert.Equal(t, 17.25, card.PriceSummary.Min)
			assert.Equal(t, 24.50, card.PriceSummary.Max)
		}
	})

	t.Run("Plain source is always unpriced", func(t *testing.T) {
		card := catalog.Normalize(raw, domain.SourcePlain)
		assert.Nil(t, card.PriceSummary)
	})
}
