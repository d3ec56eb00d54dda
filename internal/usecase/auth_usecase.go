package usecase

import (
	"context"
	"time"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/logger"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// RegisterSession acknowledges a validated bearer token. The frontend fires
// this once per mount and ignores the response body, so the only work here
// is audit logging; failures must never break the session.
func (u *authUsecase) RegisterSession(ctx context.Context, userID, email string) error {
	if userID == "" {
		return apperror.Unauthorized("No authenticated subject in session")
	}
	logger.Log.Info("session registered", "user_id", userID, "email", email)
	return nil
}

// EnsureUserExists implements provisioning with idempotent upsert semantics:
// fetch by Supabase subject id, create only when not found. Concurrent
// provisioning attempts may race on the insert; the unique constraint makes
// the loser re-read instead of failing.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if user.Username == "" {
		user.Username = "User"
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Create(ctx, user); err != nil {
		if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == 409 {
			// Lost a provisioning race; the record exists now.
			return u.userRepo.GetByID(ctx, user.ID)
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not yet provisioned")
	}
	return user, nil
}
