package usecase

import (
	"context"
	"time"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type cardUsecase struct {
	cardRepo     domain.CardRepository
	categoryRepo domain.CategoryRepository
	validate     *validator.Validate
}

func NewCardUsecase(cardRepo domain.CardRepository, categoryRepo domain.CategoryRepository, validate *validator.Validate) domain.CardUsecase {
	return &cardUsecase{cardRepo: cardRepo, categoryRepo: categoryRepo, validate: validate}
}

func requireAdmin(ctx context.Context) error {
	isAdmin, ok := ctx.Value(domain.KeyIsAdmin).(bool)
	if !ok || !isAdmin {
		return apperror.Forbidden("Only admins can manage the catalog")
	}
	return nil
}

func (u *cardUsecase) Create(ctx context.Context, card *domain.Card) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := u.validate.Struct(card); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	category, err := u.categoryRepo.GetByID(ctx, card.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.BadRequest("Category does not exist")
	}

	card.ID = uuid.NewString()
	card.CreatedAt = time.Now()
	return u.cardRepo.Create(ctx, card)
}

func (u *cardUsecase) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	card, err := u.cardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.NotFound("Card not found")
	}
	return card, nil
}

func (u *cardUsecase) List(ctx context.Context) ([]domain.Card, error) {
	return u.cardRepo.List(ctx)
}

func (u *cardUsecase) ListByCategory(ctx context.Context, categoryID string) ([]domain.Card, error) {
	return u.cardRepo.ListByCategory(ctx, categoryID)
}

func (u *cardUsecase) Update(ctx context.Context, card *domain.Card) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	existing, err := u.cardRepo.GetByID(ctx, card.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Card not found")
	}
	if err := u.validate.Struct(card); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}
	return u.cardRepo.Update(ctx, card)
}

func (u *cardUsecase) Delete(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.cardRepo.Delete(ctx, id)
}
