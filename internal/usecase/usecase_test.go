package usecase_test

import (
	"context"
	"testing"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/internal/usecase"
	"go-scancollect-backend/pkg/apperror"
	"go-scancollect-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) Create(ctx context.Context, card *domain.Card) error {
	return m.Called(ctx, card).Error(0)
}
func (m *MockCardRepo) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
func (m *MockCardRepo) List(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}
func (m *MockCardRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Card, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}
func (m *MockCardRepo) Update(ctx context.Context, card *domain.Card) error {
	return m.Called(ctx, card).Error(0)
}
func (m *MockCardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) Create(ctx context.Context, entry *domain.Collection) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockCollectionRepo) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}
func (m *MockCollectionRepo) ListByUser(ctx context.Context, userID string) ([]domain.Collection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collection), args.Error(1)
}
func (m *MockCollectionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockCollectionRepo) CountByUserAndCategory(ctx context.Context, userID, categoryID string) (int, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Int(0), args.Error(1)
}
func (m *MockCollectionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) Create(ctx context.Context, achievement *domain.Achievement) error {
	return m.Called(ctx, achievement).Error(0)
}
func (m *MockAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Achievement), args.Error(1)
}
func (m *MockAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}
func (m *MockAchievementRepo) Update(ctx context.Context, achievement *domain.Achievement) error {
	return m.Called(ctx, achievement).Error(0)
}
func (m *MockAchievementRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAchievementRepo) ListUnlocked(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievement), args.Error(1)
}
func (m *MockAchievementRepo) Unlock(ctx context.Context, ua *domain.UserAchievement) error {
	return m.Called(ctx, ua).Error(0)
}
func (m *MockAchievementRepo) IsUnlocked(ctx context.Context, userID, achievementID string) (bool, error) {
	args := m.Called(ctx, userID, achievementID)
	return args.Bool(0), args.Error(1)
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Should return existing user without creating", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		existing := &domain.User{ID: "sub-1", Email: "a@b.c", Username: "alice"}
		mockRepo.On("GetByID", mock.Anything, "sub-1").Return(existing, nil)

		user, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "sub-1", Email: "a@b.c"})
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create with default username when missing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "sub-2").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "User", u.Username)
		})

		user, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "sub-2", Email: "b@c.d"})
		assert.NoError(t, err)
		assert.Equal(t, "sub-2", user.ID)
	})

	t.Run("Should re-read when losing a provisioning race", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		winner := &domain.User{ID: "sub-3", Username: "winner"}
		mockRepo.On("GetByID", mock.Anything, "sub-3").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("User already exists"))
		mockRepo.On("GetByID", mock.Anything, "sub-3").Return(winner, nil).Once()

		user, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "sub-3"})
		assert.NoError(t, err)
		assert.Equal(t, "winner", user.Username)
	})
}

func TestGetCurrentUserNotProvisioned(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := uc.GetCurrentUser(context.Background(), "ghost")
	assert.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCollectionIDOR(t *testing.T) {
	t.Run("Should fail when removing another user's entry", func(t *testing.T) {
		collRepo := new(MockCollectionRepo)
		cardRepo := new(MockCardRepo)
		uc := usecase.NewCollectionUsecase(collRepo, cardRepo, nil)

		collRepo.On("GetByID", mock.Anything, "entry1").Return(&domain.Collection{ID: "entry1", UserID: "owner"}, nil)

		err := uc.Remove(context.Background(), "intruder", "entry1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own collection")
		collRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should fail when listing another user's collection", func(t *testing.T) {
		collRepo := new(MockCollectionRepo)
		uc := usecase.NewCollectionUsecase(collRepo, new(MockCardRepo), nil)

		_, err := uc.ListByUser(context.Background(), "user1", "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own collection")
	})

	t.Run("Should fail safely without an authenticated user", func(t *testing.T) {
		uc := usecase.NewCollectionUsecase(new(MockCollectionRepo), new(MockCardRepo), nil)

		_, err := uc.Add(context.Background(), "", "card1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestCollectionAddEvaluatesTriggers(t *testing.T) {
	collRepo := new(MockCollectionRepo)
	cardRepo := new(MockCardRepo)
	achRepo := new(MockAchievementRepo)
	achUC := usecase.NewAchievementUsecase(achRepo, collRepo, validator.New())
	uc := usecase.NewCollectionUsecase(collRepo, cardRepo, achUC)

	cardRepo.On("GetByID", mock.Anything, "card1").Return(&domain.Card{ID: "card1", Name: "Pikachu"}, nil)
	collRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Collection")).Return(nil)
	achRepo.On("List", mock.Anything).Return([]domain.Achievement{}, nil)

	entry, err := uc.Add(context.Background(), "user1", "card1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", entry.UserID)
	achRepo.AssertCalled(t, "List", mock.Anything)
}

func TestEvaluateCollectionTriggers(t *testing.T) {
	achievements := []domain.Achievement{
		{ID: "a1", Name: "First Catch", TriggerType: domain.TriggerCollectionCount, Requirement: "1"},
		{ID: "a2", Name: "Ten Strong", TriggerType: domain.TriggerCollectionCount, Requirement: "10"},
		{ID: "a3", Name: "Broken", TriggerType: domain.TriggerCollectionCount, Requirement: "lots"},
		{ID: "a4", Name: "Pokemon Starter", TriggerType: domain.TriggerCategoryCount, Requirement: "category:cat-pokemon:3"},
		{ID: "a5", Name: "Hand Picked", TriggerType: domain.TriggerManual, Requirement: ""},
	}

	t.Run("Should unlock only satisfied thresholds", func(t *testing.T) {
		collRepo := new(MockCollectionRepo)
		achRepo := new(MockAchievementRepo)
		uc := usecase.NewAchievementUsecase(achRepo, collRepo, validator.New())

		achRepo.On("List", mock.Anything).Return(achievements, nil)
		collRepo.On("CountByUser", mock.Anything, "user1").Return(4, nil)
		collRepo.On("CountByUserAndCategory", mock.Anything, "user1", "cat-pokemon").Return(3, nil)
		achRepo.On("IsUnlocked", mock.Anything, "user1", "a1").Return(false, nil)
		achRepo.On("IsUnlocked", mock.Anything, "user1", "a4").Return(false, nil)
		achRepo.On("Unlock", mock.Anything, mock.AnythingOfType("*domain.UserAchievement")).Return(nil)

		err := uc.EvaluateCollectionTriggers(context.Background(), "user1")
		assert.NoError(t, err)
		achRepo.AssertNumberOfCalls(t, "Unlock", 2)
		// a2 is below threshold, a3 is malformed, a5 is manual only.
		achRepo.AssertNotCalled(t, "IsUnlocked", mock.Anything, "user1", "a2")
	})

	t.Run("Should skip achievements already unlocked", func(t *testing.T) {
		collRepo := new(MockCollectionRepo)
		achRepo := new(MockAchievementRepo)
		uc := usecase.NewAchievementUsecase(achRepo, collRepo, validator.New())

		achRepo.On("List", mock.Anything).Return(achievements[:1], nil)
		collRepo.On("CountByUser", mock.Anything, "user1").Return(4, nil)
		achRepo.On("IsUnlocked", mock.Anything, "user1", "a1").Return(true, nil)

		err := uc.EvaluateCollectionTriggers(context.Background(), "user1")
		assert.NoError(t, err)
		achRepo.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything)
	})

	t.Run("Should tolerate losing an unlock race", func(t *testing.T) {
		collRepo := new(MockCollectionRepo)
		achRepo := new(MockAchievementRepo)
		uc := usecase.NewAchievementUsecase(achRepo, collRepo, validator.New())

		achRepo.On("List", mock.Anything).Return(achievements[:1], nil)
		collRepo.On("CountByUser", mock.Anything, "user1").Return(4, nil)
		achRepo.On("IsUnlocked", mock.Anything, "user1", "a1").Return(false, nil)
		achRepo.On("Unlock", mock.Anything, mock.Anything).Return(apperror.Conflict("Achievement already unlocked"))

		err := uc.EvaluateCollectionTriggers(context.Background(), "user1")
		assert.NoError(t, err)
	})
}

func TestCatalogAdminGate(t *testing.T) {
	cardRepo := new(MockCardRepo)
	uc := usecase.NewCardUsecase(cardRepo, nil, validator.New())

	t.Run("Should fail when caller is not admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyIsAdmin, false)
		err := uc.Create(ctx, &domain.Card{Name: "Pikachu"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should fail safe when admin flag is missing", func(t *testing.T) {
		err := uc.Delete(context.Background(), "card1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})
}
