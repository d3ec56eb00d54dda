package usecase

import (
	"context"
	"time"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/logger"

	"github.com/google/uuid"
)

type collectionUsecase struct {
	collectionRepo domain.CollectionRepository
	cardRepo       domain.CardRepository
	achievementUC  domain.AchievementUsecase
}

func NewCollectionUsecase(
	collectionRepo domain.CollectionRepository,
	cardRepo domain.CardRepository,
	achievementUC domain.AchievementUsecase,
) domain.CollectionUsecase {
	return &collectionUsecase{
		collectionRepo: collectionRepo,
		cardRepo:       cardRepo,
		achievementUC:  achievementUC,
	}
}

func (u *collectionUsecase) Add(ctx context.Context, userID, cardID string) (*domain.Collection, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.BadRequest("Card does not exist")
	}

	entry := &domain.Collection{
		ID:          uuid.NewString(),
		UserID:      userID,
		CardID:      cardID,
		CollectedAt: time.Now(),
	}
	if err := u.collectionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// Achievement evaluation is best-effort; a trigger failure must not
	// undo or fail the collect.
	if err := u.achievementUC.EvaluateCollectionTriggers(ctx, userID); err != nil {
		logger.Log.Error("achievement trigger evaluation failed", "user_id", userID, "error", err)
	}

	return entry, nil
}

func (u *collectionUsecase) Remove(ctx context.Context, userID, collectionID string) error {
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	entry, err := u.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NotFound("Collection entry not found")
	}
	if entry.UserID != userID {
		return apperror.Forbidden("You can only remove cards from your own collection")
	}

	return u.collectionRepo.Delete(ctx, collectionID)
}

func (u *collectionUsecase) ListByUser(ctx context.Context, requesterID, userID string) ([]domain.Collection, error) {
	if requesterID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if userID == "" {
		userID = requesterID
	}
	if requesterID != userID {
		return nil, apperror.Forbidden("You can only view your own collection")
	}
	return u.collectionRepo.ListByUser(ctx, userID)
}
