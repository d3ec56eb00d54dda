package catalog

import (
	"context"
	"log/slog"

	"go-scancollect-backend/internal/domain"
)

// rawPage is one page of un-normalized upstream records.
type rawPage struct {
	items      []map[string]interface{}
	totalPages int
}

// upstream is implemented by each external catalog client.
type upstream interface {
	Kind() domain.SourceKind
	PageSize() int
	Fetch(ctx context.Context, q domain.CatalogQuery) (*rawPage, error)
}

// Orchestrator coordinates paginated retrieval across the two upstream
// catalogs. It is stateless per call: concurrent requests never interfere
// with each other. Superseding an in-flight query belongs to whoever owns
// the query lifetime; the SDK's CardBrowser does that for UI-style paging.
type Orchestrator struct {
	pricing upstream
	plain   upstream
	log     *slog.Logger
}

func NewOrchestrator(pricing *PricingClient, plain *PlainClient, log *slog.Logger) *Orchestrator {
	return &Orchestrator{pricing: pricing, plain: plain, log: log}
}

// FetchPage retrieves and normalizes one page from the selected source.
//
// The two sources have asymmetric failure policy, preserved deliberately:
// the pricing catalog degrades to the embedded static dataset, while plain
// catalog failures surface to the caller with no substitute data.
func (o *Orchestrator) FetchPage(ctx context.Context, q domain.CatalogQuery) (*domain.FetchPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	src := o.plain
	if q.Source == domain.SourcePricing {
		src = o.pricing
	}

	page, err := src.Fetch(ctx, q)
	if err != nil {
		if q.Source != domain.SourcePricing {
			return nil, err
		}
		o.log.Warn("pricing catalog unavailable, serving static fallback",
			"error", err, "category", q.Category)
		return o.fallbackPage(), nil
	}

	items := make([]domain.UnifiedCard, 0, len(page.items))
	for _, raw := range page.items {
		items = append(items, Normalize(raw, src.Kind()))
	}

	return &domain.FetchPage{
		SourceUsed: domain.SourcePrimary,
		Items:      items,
		PageNumber: q.Page,
		TotalPages: page.totalPages,
	}, nil
}

func (o *Orchestrator) fallbackPage() *domain.FetchPage {
	items := make([]domain.UnifiedCard, 0, len(fallbackRawCards))
	for _, raw := range fallbackRawCards {
		items = append(items, Normalize(raw, domain.SourcePricing))
	}

	return &domain.FetchPage{
		SourceUsed: domain.SourceStaticFallback,
		Items:      items,
		PageNumber: 1,
		TotalPages: 1,
	}
}
