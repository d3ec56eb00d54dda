package domain

import (
	"context"
	"time"
)

// Trigger types understood by the unlock engine.
const (
	TriggerCollectionCount = "collection_count"
	TriggerCategoryCount   = "category_count"
	TriggerManual          = "manual"
)

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=80,no_emoji"`
	Description string    `json:"description" validate:"max=2000"`
	IconURL     string    `json:"icon_url" validate:"omitempty,url"`
	TriggerType string    `json:"trigger_type" validate:"required,oneof=collection_count category_count manual"`
	Requirement string    `json:"requirement"` // threshold, or "category:<id>:<n>"
	CreatedAt   time.Time `json:"created_at"`
}

type UserAchievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

type AchievementRepository interface {
	Create(ctx context.Context, achievement *Achievement) error
	GetByID(ctx context.Context, id string) (*Achievement, error)
	List(ctx context.Context) ([]Achievement, error)
	Update(ctx context.Context, achievement *Achievement) error
	Delete(ctx context.Context, id string) error
	ListUnlocked(ctx context.Context, userID string) ([]UserAchievement, error)
	Unlock(ctx context.Context, ua *UserAchievement) error
	IsUnlocked(ctx context.Context, userID, achievementID string) (bool, error)
}

type AchievementUsecase interface {
	Create(ctx context.Context, achievement *Achievement) error
	GetByID(ctx context.Context, id string) (*Achievement, error)
	List(ctx context.Context) ([]Achievement, error)
	Update(ctx context.Context, achievement *Achievement) error
	Delete(ctx context.Context, id string) error
	ListUnlocked(ctx context.Context, userID string) ([]UserAchievement, error)
	Unlock(ctx context.Context, userID, achievementID string) (*UserAchievement, error)
	// EvaluateCollectionTriggers unlocks any count-based achievements the
	// user now qualifies for. Called after collection writes.
	EvaluateCollectionTriggers(ctx context.Context, userID string) error
}
