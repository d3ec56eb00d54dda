package usecase

import (
	"context"

	"go-scancollect-backend/internal/catalog"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
)

type catalogUsecase struct {
	orchestrator *catalog.Orchestrator
	pricing      *catalog.PricingClient
}

func NewCatalogUsecase(orchestrator *catalog.Orchestrator, pricing *catalog.PricingClient) domain.CatalogUsecase {
	return &catalogUsecase{orchestrator: orchestrator, pricing: pricing}
}

func (u *catalogUsecase) ExplorePage(ctx context.Context, query domain.CatalogQuery) (*domain.FetchPage, error) {
	query.Source = domain.SourcePlain
	if query.Category == "" {
		return nil, apperror.BadRequest("tcg parameter is required")
	}

	page, err := u.orchestrator.FetchPage(ctx, query)
	if err != nil {
		// Plain catalog failures surface to the caller; no substitute data.
		return nil, apperror.BadGateway("Failed to fetch cards from catalog", err)
	}
	return page, nil
}

func (u *catalogUsecase) PricingPage(ctx context.Context, query domain.CatalogQuery) (*domain.FetchPage, error) {
	query.Source = domain.SourcePricing
	// Fallback to the static dataset happens inside the orchestrator, so
	// pricing pages never fail outright.
	return u.orchestrator.FetchPage(ctx, query)
}

func (u *catalogUsecase) Games(ctx context.Context) ([]domain.CatalogGame, error) {
	games, err := u.pricing.Games(ctx)
	if err != nil {
		return nil, apperror.BadGateway("Failed to fetch games from pricing catalog", err)
	}
	return games, nil
}

func (u *catalogUsecase) Sets(ctx context.Context, gameID string) ([]domain.CatalogSet, error) {
	if gameID == "" {
		return nil, apperror.BadRequest("game parameter is required")
	}
	sets, err := u.pricing.Sets(ctx, gameID)
	if err != nil {
		return nil, apperror.BadGateway("Failed to fetch sets from pricing catalog", err)
	}
	return sets, nil
}
