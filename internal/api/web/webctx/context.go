// Package webctx carries the authenticated user id through request contexts.
package webctx

import "context"

type contextKey int

const userIDKey contextKey = iota

// Manager implements model.ContextManager over context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context holding the user id.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user id set by the authentication
// middleware. The boolean is false for anonymous requests.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
