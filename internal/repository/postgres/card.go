package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashabalin/diary-server/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

type CardRepository struct {
	db *Connection
}

func NewCardRepository(db *Connection) *CardRepository {
	return &CardRepository{
		db: db,
	}
}

func (r *CardRepository) Create(ctx context.Context, card model.Card) (model.Card, error) {
	query := `INSERT INTO cards (title, subtitle, body, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, title, subtitle, body, user_id, created_at`

	var savedCard model.Card
	err := r.db.QueryRowContext(ctx, query,
		card.Title, card.Subtitle, card.Body, card.UserID,
	).Scan(
		&savedCard.ID, &savedCard.Title, &savedCard.Subtitle, &savedCard.Body,
		&savedCard.UserID, &savedCard.CreatedAt,
	)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return savedCard, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (model.Card, error) {
	var card model.Card
	query := `SELECT id, title, subtitle, body, user_id, created_at FROM cards WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.Title, &card.Subtitle, &card.Body, &card.UserID, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

// GetByUserID returns the user's cards in insertion order, ascending id.
func (r *CardRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Card, error) {
	query := `SELECT id, title, subtitle, body, user_id, created_at FROM cards
			  WHERE user_id = $1
			  ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards by user id: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		err := rows.Scan(
			&card.ID, &card.Title, &card.Subtitle, &card.Body, &card.UserID, &card.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}
