package model

import (
	"context"
	"time"
)

// SessionStore maps opaque client-held tokens to authenticated users.
// A store instance lives for the whole process: created in main, handed
// to the transport layer, discarded on shutdown.
type SessionStore interface {
	Create(ctx context.Context, userID int64) (Session, error)
	GetByToken(ctx context.Context, token string) (Session, error)
	// Delete removes a session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

// Session binds a token to the user it authenticates.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
}
