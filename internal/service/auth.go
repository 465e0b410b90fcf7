package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Register creates a user with the submitted credentials. There is no
// duplicate check: registering the same login twice yields two users.
func (a *Auth) Register(ctx context.Context, login, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user",
		"login", login)

	user, err := a.userStore.Create(ctx, model.User{
		Login:    login,
		Password: password,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"login", login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"login", login,
		"user_id", user.ID)

	return user, nil
}

// Login matches the credentials against stored users and opens a session
// for the matched user. A miss yields model.ErrInvalidCredentials without
// revealing which field was wrong.
func (a *Auth) Login(ctx context.Context, login, password string) (model.Session, error) {
	a.logger.Debug("Auth service: logging user in",
		"login", login)

	user, err := a.userStore.GetByCredentials(ctx, login, password)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: credentials did not match",
			"login", login)
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	session, err := a.sessionStore.Create(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"login", login,
		"user_id", user.ID)

	return session, nil
}

// Logout drops the session behind the token. An empty or unknown token is
// a no-op.
func (a *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionStore.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	a.logger.Debug("Auth service: session closed")

	return nil
}

// Authenticate resolves a session token to the owning user id.
func (a *Auth) Authenticate(ctx context.Context, token string) (int64, error) {
	session, err := a.sessionStore.GetByToken(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session.UserID, nil
}
