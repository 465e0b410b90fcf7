package model

import (
	"context"
	"time"
)

// CardStore defines persistence operations for diary cards.
type CardStore interface {
	Create(ctx context.Context, card Card) (Card, error)
	GetByID(ctx context.Context, id int64) (Card, error)
	GetByUserID(ctx context.Context, userID int64) ([]Card, error)
}

// Card represents a stored diary card. Cards are owned by exactly one
// user, never updated and never deleted.
type Card struct {
	ID        int64
	Title     string
	Subtitle  string
	Body      string
	UserID    int64
	CreatedAt time.Time
}

// CreateCardParams contains parameters to create a card.
type CreateCardParams struct {
	UserID   int64
	Title    string
	Subtitle string
	Body     string
}
