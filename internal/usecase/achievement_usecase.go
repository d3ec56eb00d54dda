package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/logger"
	"go-scancollect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type achievementUsecase struct {
	achievementRepo domain.AchievementRepository
	collectionRepo  domain.CollectionRepository
	validate        *validator.Validate
}

func NewAchievementUsecase(
	achievementRepo domain.AchievementRepository,
	collectionRepo domain.CollectionRepository,
	validate *validator.Validate,
) domain.AchievementUsecase {
	return &achievementUsecase{
		achievementRepo: achievementRepo,
		collectionRepo:  collectionRepo,
		validate:        validate,
	}
}

func (u *achievementUsecase) Create(ctx context.Context, achievement *domain.Achievement) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := u.validate.Struct(achievement); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	achievement.ID = uuid.NewString()
	achievement.CreatedAt = time.Now()
	return u.achievementRepo.Create(ctx, achievement)
}

func (u *achievementUsecase) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	achievement, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if achievement == nil {
		return nil, apperror.NotFound("Achievement not found")
	}
	return achievement, nil
}

func (u *achievementUsecase) List(ctx context.Context) ([]domain.Achievement, error) {
	return u.achievementRepo.List(ctx)
}

func (u *achievementUsecase) Update(ctx context.Context, achievement *domain.Achievement) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	existing, err := u.achievementRepo.GetByID(ctx, achievement.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Achievement not found")
	}
	if err := u.validate.Struct(achievement); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}
	return u.achievementRepo.Update(ctx, achievement)
}

func (u *achievementUsecase) Delete(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.achievementRepo.Delete(ctx, id)
}

func (u *achievementUsecase) ListUnlocked(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	return u.achievementRepo.ListUnlocked(ctx, userID)
}

// Unlock grants one achievement explicitly. Idempotent: unlocking an
// already-unlocked achievement returns the conflict as-is so callers can
// treat it as success.
func (u *achievementUsecase) Unlock(ctx context.Context, userID, achievementID string) (*domain.UserAchievement, error) {
	achievement, err := u.achievementRepo.GetByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if achievement == nil {
		return nil, apperror.NotFound("Achievement not found")
	}

	ua := &domain.UserAchievement{
		ID:            uuid.NewString(),
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	if err := u.achievementRepo.Unlock(ctx, ua); err != nil {
		return nil, err
	}
	return ua, nil
}

// EvaluateCollectionTriggers checks every count-based achievement against
// the user's current collection and unlocks the ones now satisfied. Called
// after collection writes; failures are logged, never propagated, so a
// broken trigger cannot block collecting.
func (u *achievementUsecase) EvaluateCollectionTriggers(ctx context.Context, userID string) error {
	achievements, err := u.achievementRepo.List(ctx)
	if err != nil {
		return err
	}

	var total int
	totalLoaded := false

	for _, a := range achievements {
		var satisfied bool
		switch a.TriggerType {
		case domain.TriggerCollectionCount:
			threshold, err := strconv.Atoi(a.Requirement)
			if err != nil {
				logger.Log.Warn("achievement has malformed requirement", "achievement_id", a.ID, "requirement", a.Requirement)
				continue
			}
			if !totalLoaded {
				if total, err = u.collectionRepo.CountByUser(ctx, userID); err != nil {
					return err
				}
				totalLoaded = true
			}
			satisfied = total >= threshold
		case domain.TriggerCategoryCount:
			// requirement format: category:<id>:<n>
			parts := strings.SplitN(a.Requirement, ":", 3)
			if len(parts) != 3 || parts[0] != "category" {
				logger.Log.Warn("achievement has malformed requirement", "achievement_id", a.ID, "requirement", a.Requirement)
				continue
			}
			threshold, err := strconv.Atoi(parts[2])
			if err != nil {
				continue
			}
			count, err := u.collectionRepo.CountByUserAndCategory(ctx, userID, parts[1])
			if err != nil {
				return err
			}
			satisfied = count >= threshold
		default:
			continue
		}

		if !satisfied {
			continue
		}

		unlocked, err := u.achievementRepo.IsUnlocked(ctx, userID, a.ID)
		if err != nil {
			return err
		}
		if unlocked {
			continue
		}

		ua := &domain.UserAchievement{
			ID:            uuid.NewString(),
			UserID:        userID,
			AchievementID: a.ID,
			UnlockedAt:    time.Now(),
		}
		if err := u.achievementRepo.Unlock(ctx, ua); err != nil {
			if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == 409 {
				continue // raced with another unlock, fine
			}
			return err
		}
		logger.Log.Info("achievement unlocked", "user_id", userID, "achievement_id", a.ID)
	}
	return nil
}
