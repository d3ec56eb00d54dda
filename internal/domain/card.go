package domain

import (
	"context"
	"time"
)

type Card struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=120,card_name"`
	Rarity      string    `json:"rarity" validate:"required,max=40"`
	SetCode     string    `json:"set_code" validate:"required,set_code"`
	Number      string    `json:"number" validate:"max=20"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	Description string    `json:"description" validate:"max=2000"`
	CreatedAt   time.Time `json:"created_at"`
}

type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, id string) (*Card, error)
	List(ctx context.Context) ([]Card, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Card, error)
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, id string) error
}

type CardUsecase interface {
	Create(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, id string) (*Card, error)
	List(ctx context.Context) ([]Card, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Card, error)
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, id string) error
}
