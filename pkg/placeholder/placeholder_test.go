package placeholder_test

import (
	"bytes"
	"image/png"
	"testing"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/placeholder"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeDeterministic(t *testing.T) {
	card := domain.UnifiedCard{
		Name:          "Charizard",
		Rarity:        "Rare",
		SetIdentifier: "BASE",
		Number:        "4",
	}

	first, err := placeholder.Synthesize(card, "pokemon")
	assert.NoError(t, err)
	second, err := placeholder.Synthesize(card, "pokemon")
	assert.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "same inputs must yield identical bytes")
}

func TestSynthesizeDistinctInputsDiffer(t *testing.T) {
	a, err := placeholder.Synthesize(domain.UnifiedCard{Name: "Charizard", Rarity: "Rare"}, "pokemon")
	assert.NoError(t, err)
	b, err := placeholder.Synthesize(domain.UnifiedCard{Name: "Blastoise", Rarity: "Rare"}, "pokemon")
	assert.NoError(t, err)

	assert.False(t, bytes.Equal(a, b))
}

func TestSynthesizeEmptyCard(t *testing.T) {
	out, err := placeholder.Synthesize(domain.UnifiedCard{}, "")
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 260, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
}

func TestSynthesizeIncludesPrice(t *testing.T) {
	priced := domain.UnifiedCard{
		Name:         "Sample",
		Rarity:       "Common",
		PriceSummary: &domain.PriceSummary{Min: 1.99, Max: 5.00},
	}
	unpriced := domain.UnifiedCard{Name: "Sample", Rarity: "Common"}

	a, err := placeholder.Synthesize(priced, "pokemon")
	assert.NoError(t, err)
	b, err := placeholder.Synthesize(unpriced, "pokemon")
	assert.NoError(t, err)

	// Price text changes the rendering.
	assert.False(t, bytes.Equal(a, b))
}
