package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashabalin/diary-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (login, password)
			  VALUES ($1, $2)
			  RETURNING id, login, password, created_at`

	var savedUser model.User
	err := r.db.QueryRowContext(ctx, query, user.Login, user.Password).Scan(
		&savedUser.ID, &savedUser.Login, &savedUser.Password, &savedUser.CreatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, login, password, created_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Login, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByCredentials returns the user whose stored login and password both
// match exactly. Logins carry no uniqueness constraint, so the lowest id
// wins when several rows match.
func (r *UserRepository) GetByCredentials(ctx context.Context, login, password string) (model.User, error) {
	var user model.User
	query := `SELECT id, login, password, created_at FROM users
			  WHERE login = $1 AND password = $2
			  ORDER BY id LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, login, password).Scan(
		&user.ID, &user.Login, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	return user, nil
}
