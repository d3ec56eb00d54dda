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

type collectionRepo struct {
	db *pgxpool.Pool
}

func NewCollectionRepository(db *pgxpool.Pool) domain.CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Create(ctx context.Context, entry *domain.Collection) error {
	query := `INSERT INTO collections (id, user_id, card_id, collected_at)
              VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.UserID, entry.CardID, entry.CollectedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Card is already in your collection")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *collectionRepo) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	query := `SELECT id, user_id, card_id, collected_at FROM collections WHERE id = $1`
	var entry domain.Collection
	err := r.db.QueryRow(ctx, query, id).Scan(&entry.ID, &entry.UserID, &entry.CardID, &entry.CollectedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *collectionRepo) ListByUser(ctx context.Context, userID string) ([]domain.Collection, error) {
	query := `SELECT id, user_id, card_id, collected_at
              FROM collections WHERE user_id = $1 ORDER BY collected_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.Collection, 0)
	for rows.Next() {
		var entry domain.Collection
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.CardID, &entry.CollectedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *collectionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM collections WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *collectionRepo) CountByUserAndCategory(ctx context.Context, userID, categoryID string) (int, error) {
	query := `SELECT COUNT(*) FROM collections c
              JOIN cards ca ON ca.id = c.card_id
              WHERE c.user_id = $1 AND ca.category_id = $2`
	var count int
	err := r.db.QueryRow(ctx, query, userID, categoryID).Scan(&count)
	return count, err
}

func (r *collectionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	return err
}
