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

type categoryUsecase struct {
	categoryRepo domain.CategoryRepository
	validate     *validator.Validate
}

func NewCategoryUsecase(categoryRepo domain.CategoryRepository, validate *validator.Validate) domain.CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo, validate: validate}
}

func (u *categoryUsecase) Create(ctx context.Context, category *domain.Category) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := u.validate.Struct(category); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	category.ID = uuid.NewString()
	category.CreatedAt = time.Now()
	return u.categoryRepo.Create(ctx, category)
}

func (u *categoryUsecase) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return category, nil
}

func (u *categoryUsecase) List(ctx context.Context) ([]domain.Category, error) {
	return u.categoryRepo.List(ctx)
}

func (u *categoryUsecase) Update(ctx context.Context, category *domain.Category) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	existing, err := u.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Category not found")
	}
	if err := u.validate.Struct(category); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}
	return u.categoryRepo.Update(ctx, category)
}

func (u *categoryUsecase) Delete(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.categoryRepo.Delete(ctx, id)
}
