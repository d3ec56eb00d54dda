package postgres

import (
	"context"
	"errors"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type achievementRepo struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) domain.AchievementRepository {
	return &achievementRepo{db: db}
}

func (r *achievementRepo) Create(ctx context.Context, achievement *domain.Achievement) error {
	query := `INSERT INTO achievements (id, name, description, icon_url, trigger_type, requirement, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		achievement.ID, achievement.Name, achievement.Description, achievement.IconURL,
		achievement.TriggerType, achievement.Requirement, achievement.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Achievement with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *achievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	query := `SELECT id, name, description, icon_url, trigger_type, requirement, created_at
              FROM achievements WHERE id = $1`
	var a domain.Achievement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.IconURL, &a.TriggerType, &a.Requirement, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *achievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	query := `SELECT id, name, description, icon_url, trigger_type, requirement, created_at
              FROM achievements ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := make([]domain.Achievement, 0)
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.IconURL, &a.TriggerType, &a.Requirement, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (r *achievementRepo) Update(ctx context.Context, achievement *domain.Achievement) error {
	query := `UPDATE achievements SET name = $2, description = $3, icon_url = $4,
              trigger_type = $5, requirement = $6 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		achievement.ID, achievement.Name, achievement.Description, achievement.IconURL,
		achievement.TriggerType, achievement.Requirement)
	return err
}

func (r *achievementRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	return err
}

func (r *achievementRepo) ListUnlocked(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	query := `SELECT id, user_id, achievement_id, unlocked_at
              FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := make([]domain.UserAchievement, 0)
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, ua)
	}
	return unlocked, rows.Err()
}

func (r *achievementRepo) Unlock(ctx context.Context, ua *domain.UserAchievement) error {
	query := `INSERT INTO user_achievements (id, user_id, achievement_id, unlocked_at)
              VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, ua.ID, ua.UserID, ua.AchievementID, ua.UnlockedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Achievement already unlocked")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *achievementRepo) IsUnlocked(ctx context.Context, userID, achievementID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_achievements WHERE user_id = $1 AND achievement_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, achievementID).Scan(&exists)
	return exists, err
}
