package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByCredentials(ctx context.Context, login, password string) (User, error)
}

// User represents a registered diary user. The password is stored as
// submitted. Logins are not unique: GetByCredentials resolves
// duplicates to the lowest id.
type User struct {
	ID        int64
	Login     string
	Password  string
	CreatedAt time.Time
}
