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

type cardRepo struct {
	db *pgxpool.Pool
}

func NewCardRepository(db *pgxpool.Pool) domain.CardRepository {
	return &cardRepo{db: db}
}

const cardColumns = `id, category_id, name, rarity, set_code, number, image_url, description, created_at`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID, &card.CategoryID, &card.Name, &card.Rarity, &card.SetCode,
		&card.Number, &card.ImageURL, &card.Description, &card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) Create(ctx context.Context, card *domain.Card) error {
	query := `INSERT INTO cards (` + cardColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		card.ID, card.CategoryID, card.Name, card.Rarity, card.SetCode,
		card.Number, card.ImageURL, card.Description, card.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Card already exists in this set")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *cardRepo) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return card, err
}

func (r *cardRepo) List(ctx context.Context) ([]domain.Card, error) {
	return r.queryCards(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY created_at DESC`)
}

func (r *cardRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Card, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE category_id = $1 ORDER BY set_code, number`,
		categoryID)
}

func (r *cardRepo) queryCards(ctx context.Context, query string, args ...interface{}) ([]domain.Card, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (r *cardRepo) Update(ctx context.Context, card *domain.Card) error {
	query := `UPDATE cards SET category_id = $2, name = $3, rarity = $4, set_code = $5,
              number = $6, image_url = $7, description = $8 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		card.ID, card.CategoryID, card.Name, card.Rarity, card.SetCode,
		card.Number, card.ImageURL, card.Description)
	return err
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	return err
}
