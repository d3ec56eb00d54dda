package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-scancollect-backend/pkg/client"

	"github.com/stretchr/testify/assert"
)

func TestEnsureUserProvisioningFlow(t *testing.T) {
	var creates atomic.Int32
	var provisioned atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/user":
			if !provisioned.Load() {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false, "message": "User not yet provisioned",
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"user_id": "sub-1", "username": "alice"},
			})
		case "/api/create-user":
			creates.Add(1)
			provisioned.Store(true)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"user_id": "sub-1", "username": body["username"]},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	sessions := &staticSessions{session: &client.Session{AccessToken: "tok", UserID: "sub-1"}}
	api := client.New(server.URL, sessions)

	// First call: 404 then create
	user, err := api.EnsureUser(context.Background(), "alice", "")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int32(1), creates.Load())

	// Second call: record exists, no second create
	_, err = api.EnsureUser(context.Background(), "alice", "")
	assert.NoError(t, err)
	assert.Equal(t, int32(1), creates.Load())
}

func TestCurrentUserNotProvisioned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false, "message": "User not yet provisioned",
		})
	}))
	defer server.Close()

	sessions := &staticSessions{session: &client.Session{AccessToken: "tok"}}
	api := client.New(server.URL, sessions)

	_, err := api.CurrentUser(context.Background())
	assert.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestAuthenticatedRequestWithoutSession(t *testing.T) {
	api := client.New("http://127.0.0.1:0", &staticSessions{})

	err := api.Authenticate(context.Background())
	assert.Error(t, err)
	apiErr, ok := err.(*client.APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestExploreCardsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/explore-cards", r.URL.Path)
		assert.Equal(t, "one-piece", r.URL.Query().Get("tcg"))
		assert.Equal(t, "luffy", r.URL.Query().Get("name"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"source_used": "primary",
				"data":        []map[string]string{{"name": "Monkey D. Luffy"}},
				"page":        3,
				"totalPages":  7,
			},
		})
	}))
	defer server.Close()

	api := client.New(server.URL, &staticSessions{})
	page, err := api.ExploreCards(context.Background(), "one-piece", "luffy", 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, page.TotalPages)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Monkey D. Luffy", page.Items[0].Name)
}
