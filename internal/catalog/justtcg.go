package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-scancollect-backend/internal/domain"
)

// pricingPageSize is fixed by the upstream pricing catalog.
const pricingPageSize = 20

// Game IDs the pricing catalog expects differ from our category slugs.
var gameIDMapping = map[string]string{
	"one-piece":       "one-piece-card-game",
	"pokemon":         "pokemon",
	"magic":           "magic-the-gathering",
	"yugioh":          "yugioh",
	"digimon":         "digimon-card-game",
	"union-arena":     "union-arena",
	"disney-lorcana":  "disney-lorcana",
	"flesh-and-blood": "flesh-and-blood-tcg",
	"age-of-sigmar":   "age-of-sigmar",
	"warhammer-40000": "warhammer-40000",
}

// PricingClient talks to the pricing-aware card catalog (JustTCG). It
// returns per-condition price variants but no usable image URLs.
type PricingClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewPricingClient(baseURL, apiKey string) *PricingClient {
	return &PricingClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

func (c *PricingClient) Kind() domain.SourceKind { return domain.SourcePricing }

func (c *PricingClient) PageSize() int { return pricingPageSize }

// GameID maps a category slug to the catalog's game identifier, passing
// unknown slugs through unchanged.
func GameID(category string) string {
	if mapped, ok := gameIDMapping[category]; ok {
		return mapped
	}
	return category
}

func (c *PricingClient) Fetch(ctx context.Context, q domain.CatalogQuery) (*rawPage, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("game", GameID(q.Category))
	}
	if q.SearchTerm != "" {
		params.Set("name", q.SearchTerm)
	}
	params.Set("limit", strconv.Itoa(pricingPageSize))
	params.Set("offset", strconv.Itoa((q.Page-1)*pricingPageSize))
	if q.OrderBy != "" {
		params.Set("orderBy", q.OrderBy)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := c.get(ctx, "/cards?"+params.Encode(), &body); err != nil {
		return nil, err
	}

	// The pricing catalog reports no page count; a full page implies at
	// least one more.
	totalPages := q.Page
	if len(body.Data) == pricingPageSize {
		totalPages = q.Page + 1
	}

	return &rawPage{items: body.Data, totalPages: totalPages}, nil
}

// Games lists the catalogs the pricing source covers.
func (c *PricingClient) Games(ctx context.Context) ([]domain.CatalogGame, error) {
	var body struct {
		Data []domain.CatalogGame `json:"data"`
	}
	if err := c.get(ctx, "/games", &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// Sets lists the card sets known for one game.
func (c *PricingClient) Sets(ctx context.Context, gameID string) ([]domain.CatalogSet, error) {
	var body struct {
		Data []domain.CatalogSet `json:"data"`
	}
	if err := c.get(ctx, "/sets?game="+url.QueryEscape(gameID), &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *PricingClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pricing catalog responded %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
