package domain

import (
	"context"
	"time"
)

// Collection is one card owned by one user.
type Collection struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CardID      string    `json:"card_id"`
	CollectedAt time.Time `json:"collected_at"`
}

type CollectionRepository interface {
	Create(ctx context.Context, entry *Collection) error
	GetByID(ctx context.Context, id string) (*Collection, error)
	ListByUser(ctx context.Context, userID string) ([]Collection, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CountByUserAndCategory(ctx context.Context, userID, categoryID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type CollectionUsecase interface {
	Add(ctx context.Context, userID, cardID string) (*Collection, error)
	Remove(ctx context.Context, userID, collectionID string) error
	ListByUser(ctx context.Context, requesterID, userID string) ([]Collection, error)
}
