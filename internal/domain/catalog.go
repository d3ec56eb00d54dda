package domain

import (
	"context"
	"time"
)

// SourceKind identifies which upstream catalog a raw payload came from.
type SourceKind string

const (
	// SourcePricing is the pricing-aware catalog: per-condition price
	// variants, no reliable image URL.
	SourcePricing SourceKind = "pricing"
	// SourcePlain is the plain catalog: image URLs, no pricing data.
	SourcePlain SourceKind = "plain"
)

// SourceUsed reports where a fetched page actually came from.
type SourceUsed string

const (
	SourcePrimary        SourceUsed = "primary"
	SourceStaticFallback SourceUsed = "static_fallback"
)

// PriceSummary is the min/max across a card's price variants. Present only
// for cards from the pricing-aware source.
type PriceSummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UnifiedCard is the source-agnostic card record produced by normalization.
// Name, SetIdentifier and Rarity are always non-nil strings no matter how
// malformed the upstream payload was.
type UnifiedCard struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SetIdentifier string        `json:"set_code"`
	Number        string        `json:"number"`
	Rarity        string        `json:"rarity"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	PriceSummary  *PriceSummary `json:"price_summary,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}

type SortField string

const (
	SortByName    SortField = "name"
	SortByRarity  SortField = "rarity"
	SortBySetCode SortField = "set_code"
	SortByCreated SortField = "created_at"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// FilterSortSpec is the client-supplied filter and ordering for a card list.
type FilterSortSpec struct {
	SearchTerm     string        `json:"search_term"`
	RarityFilter   string        `json:"rarity_filter"`
	CategoryFilter string        `json:"category_filter"`
	SortField      SortField     `json:"sort_field"`
	SortDirection  SortDirection `json:"sort_direction"`
}

// CatalogQuery selects one page from one upstream source.
type CatalogQuery struct {
	Source     SourceKind
	Category   string // game/category identifier, e.g. "one-piece"
	SearchTerm string
	Page       int // 1-based
	OrderBy    string
	Order      string
}

// FetchPage is one page of normalized cards plus pagination metadata.
type FetchPage struct {
	SourceUsed SourceUsed    `json:"source_used"`
	Items      []UnifiedCard `json:"data"`
	PageNumber int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// CatalogGame mirrors the pricing catalog's game listing.
type CatalogGame struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	GameID string `json:"game_id"`
}

// CatalogSet mirrors the pricing catalog's set listing.
type CatalogSet struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	GameID string `json:"game_id"`
}

type CatalogUsecase interface {
	// ExplorePage fetches from the plain catalog. Upstream failures surface
	// to the caller; no substitute data.
	ExplorePage(ctx context.Context, query CatalogQuery) (*FetchPage, error)
	// PricingPage fetches from the pricing-aware catalog, silently
	// substituting the static fallback dataset on upstream failure.
	PricingPage(ctx context.Context, query CatalogQuery) (*FetchPage, error)
	Games(ctx context.Context) ([]CatalogGame, error)
	Sets(ctx context.Context, gameID string) ([]CatalogSet, error)
}
