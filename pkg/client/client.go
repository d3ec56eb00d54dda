// Package client is a small Go SDK for the ScanCollect API. It mirrors the
// REST surface one-to-one and carries the caller's Supabase access token on
// every authenticated request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-scancollect-backend/internal/domain"
)

// Session is the caller's authenticated identity, typically sourced from a
// Supabase auth client.
type Session struct {
	AccessToken string
	UserID      string
	Email       string
	Username    string
	AvatarURL   string
}

// SessionProvider yields the current session, or nil when signed out.
type SessionProvider interface {
	CurrentSession(ctx context.Context) (*Session, error)
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404. The /user
// endpoint uses 404 to signal an authenticated but unprovisioned account.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionProvider
}

func New(baseURL string, sessions SessionProvider) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		sessions: sessions,
	}
}

// Authenticate registers the current session with the backend.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/authenticate", nil, nil, true)
}

// CurrentUser fetches the provisioned user record. A 404 (check with
// IsNotFound) means the account exists in auth but not yet in the backend.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser provisions the backend record for the current token holder.
func (c *Client) CreateUser(ctx context.Context, username, avatarURL string) (*domain.User, error) {
	body := map[string]string{"username": username, "avatar_url": avatarURL}
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/api/create-user", body, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser implements the client-side provisioning flow: look the user
// up, and only create the record when the lookup comes back 404.
func (c *Client) EnsureUser(ctx context.Context, username, avatarURL string) (*domain.User, error) {
	user, err := c.CurrentUser(ctx)
	if err == nil {
		return user, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}
	return c.CreateUser(ctx, username, avatarURL)
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories, false)
	return categories, err
}

func (c *Client) Cards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	err := c.do(ctx, http.MethodGet, "/api/cards", nil, &cards, false)
	return cards, err
}

func (c *Client) CategoryCards(ctx context.Context, categoryID string) ([]domain.Card, error) {
	var cards []domain.Card
	err := c.do(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(categoryID)+"/cards", nil, &cards, false)
	return cards, err
}

func (c *Client) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	err := c.do(ctx, http.MethodGet, "/api/achievements", nil, &achievements, false)
	return achievements, err
}

func (c *Client) UnlockedAchievements(ctx context.Context) ([]domain.UserAchievement, error) {
	var unlocked []domain.UserAchievement
	err := c.do(ctx, http.MethodGet, "/api/user/achievements", nil, &unlocked, true)
	return unlocked, err
}

func (c *Client) UnlockAchievement(ctx context.Context, achievementID string) (*domain.UserAchievement, error) {
	var ua domain.UserAchievement
	err := c.do(ctx, http.MethodPost, "/api/achievements/"+url.PathEscape(achievementID)+"/unlock", nil, &ua, true)
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

func (c *Client) Collections(ctx context.Context) ([]domain.Collection, error) {
	var entries []domain.Collection
	err := c.do(ctx, http.MethodGet, "/api/collections", nil, &entries, true)
	return entries, err
}

func (c *Client) AddToCollection(ctx context.Context, cardID string) (*domain.Collection, error) {
	body := map[string]string{"card_id": cardID}
	var entry domain.Collection
	if err := c.do(ctx, http.MethodPost, "/api/collections", body, &entry, true); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) RemoveFromCollection(ctx context.Context, collectionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/collections/"+url.PathEscape(collectionID), nil, nil, true)
}

// ExploreCards pages through the image catalog for one game.
func (c *Client) ExploreCards(ctx context.Context, tcg, name string, page int) (*domain.FetchPage, error) {
	q := url.Values{}
	q.Set("tcg", tcg)
	if name != "" {
		q.Set("name", name)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var fetched domain.FetchPage
	if err := c.do(ctx, http.MethodGet, "/api/explore-cards?"+q.Encode(), nil, &fetched, false); err != nil {
		return nil, err
	}
	return &fetched, nil
}

// PricingCards pages through the pricing catalog for one game.
func (c *Client) PricingCards(ctx context.Context, game, name string, page int) (*domain.FetchPage, error) {
	q := url.Values{}
	q.Set("game", game)
	if name != "" {
		q.Set("name", name)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var fetched domain.FetchPage
	if err := c.do(ctx, http.MethodGet, "/api/justtcg/cards?"+q.Encode(), nil, &fetched, false); err != nil {
		return nil, err
	}
	return &fetched, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		session, err := c.sessions.CurrentSession(ctx)
		if err != nil {
			return fmt.Errorf("resolve session: %w", err)
		}
		if session == nil || session.AccessToken == "" {
			return &APIError{StatusCode: http.StatusUnauthorized, Message: "no active session"}
		}
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
