package domain

import (
	"context"
	"time"
)

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=80,card_name"`
	Description string    `json:"description" validate:"max=2000"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	Rarities    []string  `json:"rarities"` // rarity tiers valid for this game
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}

type CategoryUsecase interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
