package client

import (
	"context"
	"errors"
	"sync/atomic"

	"go-scancollect-backend/internal/domain"
)

// ErrStale marks a catalog response that finished after this browser issued
// a newer query. Callers drop it instead of overwriting fresher results.
var ErrStale = errors.New("client: response superseded by a newer query")

// CardBrowser issues paginated catalog queries on behalf of one view, such
// as an explore page. Within a browser only the most recently issued query
// is logically current: when the user types a new search or flips the page
// while a fetch is still in flight, the slower response comes back ErrStale
// and must not be rendered.
//
// Each view gets its own browser. Unrelated views (or users) holding their
// own browsers never invalidate each other.
type CardBrowser struct {
	api *Client

	generation atomic.Uint64
}

func NewCardBrowser(api *Client) *CardBrowser {
	return &CardBrowser{api: api}
}

// Explore fetches one page from the image catalog.
func (b *CardBrowser) Explore(ctx context.Context, tcg, name string, page int) (*domain.FetchPage, error) {
	id := b.generation.Add(1)
	fetched, err := b.api.ExploreCards(ctx, tcg, name, page)
	return b.settle(id, fetched, err)
}

// Pricing fetches one page from the pricing catalog.
func (b *CardBrowser) Pricing(ctx context.Context, game, name string, page int) (*domain.FetchPage, error) {
	id := b.generation.Add(1)
	fetched, err := b.api.PricingCards(ctx, game, name, page)
	return b.settle(id, fetched, err)
}

// settle discards a response whose query was superseded while in flight.
// Errors from a superseded query are also reported as ErrStale so callers
// never surface a failure the user has already navigated away from.
func (b *CardBrowser) settle(id uint64, fetched *domain.FetchPage, err error) (*domain.FetchPage, error) {
	if b.generation.Load() != id {
		return nil, ErrStale
	}
	if err != nil {
		return nil, err
	}
	return fetched, nil
}
