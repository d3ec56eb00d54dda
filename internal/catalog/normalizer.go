package catalog

import (
	"strconv"
	"time"

	"go-scancollect-backend/internal/domain"
)

// Upstream catalogs disagree on field names and sometimes nest objects where
// a flat string belongs (condition/variant maps, localized title maps).
// Normalize absorbs all of that: it never panics and always yields string
// values for name, set identifier and rarity.
func Normalize(raw map[string]interface{}, kind domain.SourceKind) domain.UnifiedCard {
	card := domain.UnifiedCard{
		ID:            coerceString(raw["id"], ""),
		Name:          coerceString(raw["name"], "Unknown"),
		Number:        coerceString(raw["number"], ""),
		Rarity:        coerceString(raw["rarity"], "Unknown"),
		Description:   coerceString(raw["description"], ""),
		SetIdentifier: extractSetIdentifier(raw),
		ImageURL:      extractImageURL(raw),
	}

	if ts, ok := raw["created_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			card.CreatedAt = t
		}
	}

	if kind == domain.SourcePricing {
		card.PriceSummary = summarizePrices(raw["variants"])
	}

	return card
}

// extractImageURL tries nested images.large, then images.small, then the
// flat image_url field.
func extractImageURL(raw map[string]interface{}) string {
	if images, ok := raw["images"].(map[string]interface{}); ok {
		if large, ok := images["large"].(string); ok && large != "" {
			return large
		}
		if small, ok := images["small"].(string); ok && small != "" {
			return small
		}
	}
	if flat, ok := raw["image_url"].(string); ok {
		return flat
	}
	return ""
}

// extractSetIdentifier tries "set" first, then "set_code".
func extractSetIdentifier(raw map[string]interface{}) string {
	if v, exists := raw["set"]; exists && v != nil {
		if s := coerceString(v, ""); s != "" {
			return s
		}
	}
	return coerceString(raw["set_code"], "")
}

// coerceString turns any upstream value into a best-effort string. Objects
// are probed for name/value/label, arrays recurse into their first element,
// scalars are stringified. sentinel is returned when nothing usable remains.
func coerceString(v interface{}, sentinel string) string {
	switch val := v.(type) {
	case nil:
		return sentinel
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case map[string]interface{}:
		for _, key := range []string{"name", "value", "label"} {
			if inner, exists := val[key]; exists && inner != nil {
				if s := coerceString(inner, ""); s != "" {
					return s
				}
			}
		}
		return sentinel
	case []interface{}:
		if len(val) == 0 {
			return sentinel
		}
		return coerceString(val[0], sentinel)
	default:
		return sentinel
	}
}

// summarizePrices collapses a pricing-source variants array into a min/max
// summary. Returns nil when no numeric prices exist.
func summarizePrices(v interface{}) *domain.PriceSummary {
	variants, ok := v.([]interface{})
	if !ok || len(variants) == 0 {
		return nil
	}

	var summary *domain.PriceSummary
	for _, item := range variants {
		variant, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		price, ok := variant["price"].(float64)
		if !ok {
			continue
		}
		if summary == nil {
			summary = &domain.PriceSummary{Min: price, Max: price}
			continue
		}
		if price < summary.Min {
			summary.Min = price
		}
		if price > summary.Max {
			summary.Max = price
		}
	}
	return summary
}
