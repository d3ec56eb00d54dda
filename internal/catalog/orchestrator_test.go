package catalog_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"go-scancollect-backend/internal/catalog"
	"go-scancollect-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newOrchestrator(pricingURL, plainURL string) *catalog.Orchestrator {
	return catalog.NewOrchestrator(
		catalog.NewPricingClient(pricingURL, "test-key"),
		catalog.NewPlainClient(plainURL, "test-key"),
		testLogger(),
	)
}

func TestFetchPageFallbackAsymmetry(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	o := newOrchestrator(failing.URL, failing.URL)

	t.Run("Pricing failure degrades to static fallback", func(t *testing.T) {
		page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
			Source:   domain.SourcePricing,
			Category: "pokemon",
			Page:     1,
		})
		assert.NoError(t, err)
		if assert.NotNil(t, page) {
			assert.Equal(t, domain.SourceStaticFallback, page.SourceUsed)
			assert.NotEmpty(t, page.Items)
			assert.Equal(t, 1, page.TotalPages)
		}
	})

	t.Run("Plain failure surfaces the error with no data", func(t *testing.T) {
		page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
			Source:   domain.SourcePlain,
			Category: "one-piece",
			Page:     1,
		})
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestFetchPagePlainSource(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"name": "Monkey D. Luffy", "set_code": "OP01", "rarity": "L",
					"images": map[string]interface{}{"large": "luffy.png"}},
			},
			"totalPages": 42,
		})
	}))
	defer upstream.Close()

	o := newOrchestrator(upstream.URL, upstream.URL)

	page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
		Source:     domain.SourcePlain,
		Category:   "one-piece",
		SearchTerm: "luffy",
		Page:       1,
	})
	assert.NoError(t, err)
	if assert.Len(t, page.Items, 1) {
		card := page.Items[0]
		assert.Equal(t, "Monkey D. Luffy", card.Name)
		assert.Equal(t, "OP01", card.SetIdentifier)
		assert.Equal(t, "luffy.png", card.ImageURL)
		assert.Nil(t, card.PriceSummary)
	}
	assert.Equal(t, 42, page.TotalPages)
	assert.Equal(t, domain.SourcePrimary, page.SourceUsed)
}

func TestFetchPagePricingHeuristicPageCount(t *testing.T) {
	full := make([]map[string]interface{}, 20)
	for i := range full {
		full[i] = map[string]interface{}{"name": "Card", "rarity": "C"}
	}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pokemon", r.URL.Query().Get("game"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": full})
	}))
	defer upstream.Close()

	o := newOrchestrator(upstream.URL, upstream.URL)

	page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
		Source:   domain.SourcePricing,
		Category: "pokemon",
		Page:     2,
	})
	assert.NoError(t, err)
	// A full page implies at least one more.
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 20)
}

func TestFetchPageConcurrentCallersIndependent(t *testing.T) {
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var requests atomic.Int32

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(firstArrived)
			<-release
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"name": "Card", "rarity": "C"}},
		})
	}))
	defer upstream.Close()

	o := newOrchestrator(upstream.URL, upstream.URL)

	type result struct {
		page *domain.FetchPage
		err  error
	}
	firstDone := make(chan result, 1)
	go func() {
		page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
			Source: domain.SourcePlain, Category: "pokemon", Page: 1,
		})
		firstDone <- result{page, err}
	}()

	select {
	case <-firstArrived:
	case <-time.After(5 * time.Second):
		t.Fatal("first request never reached upstream")
	}

	// An unrelated caller's fetch completes while the first is in flight.
	page, err := o.FetchPage(context.Background(), domain.CatalogQuery{
		Source: domain.SourcePlain, Category: "one-piece", Page: 2,
	})
	assert.NoError(t, err)
	assert.NotNil(t, page)

	// The slower caller still gets its page; one request must never
	// invalidate another.
	close(release)
	got := <-firstDone
	assert.NoError(t, got.err)
	assert.NotNil(t, got.page)
	assert.Len(t, got.page.Items, 1)
}
