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

// plainPageSize is fixed by the plain catalog upstream.
const plainPageSize = 10

// PlainClient talks to the plain card catalog (API TCG). It returns image
// URLs but no pricing data.
type PlainClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewPlainClient(baseURL, apiKey string) *PlainClient {
	return &PlainClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

func (c *PlainClient) Kind() domain.SourceKind { return domain.SourcePlain }

func (c *PlainClient) PageSize() int { return plainPageSize }

func (c *PlainClient) Fetch(ctx context.Context, q domain.CatalogQuery) (*rawPage, error) {
	params := url.Values{}
	if q.SearchTerm != "" {
		params.Set("name", q.SearchTerm)
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(plainPageSize))

	endpoint := fmt.Sprintf("%s/%s/cards?%s", c.BaseURL, url.PathEscape(q.Category), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("plain catalog responded %d", resp.StatusCode)
	}

	var body struct {
		Data       []map[string]interface{} `json:"data"`
		TotalPages *int                     `json:"totalPages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	totalPages := 1
	if body.TotalPages != nil && *body.TotalPages > 0 {
		totalPages = *body.TotalPages
	}

	return &rawPage{items: body.Data, totalPages: totalPages}, nil
}
