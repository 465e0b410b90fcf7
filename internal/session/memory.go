// Package session provides the server-side store behind the session cookie.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashabalin/diary-server/internal/model"
)

var _ model.SessionStore = (*MemoryStore)(nil)

// MemoryStore keeps sessions in process memory. Sessions survive until
// logout or process stop, whichever comes first.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]model.Session),
	}
}

// Create opens a new session for the given user under a fresh opaque token.
func (s *MemoryStore) Create(_ context.Context, userID int64) (model.Session, error) {
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// GetByToken resolves a token to its session, or model.ErrNotFound.
func (s *MemoryStore) GetByToken(_ context.Context, token string) (model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return model.Session{}, model.ErrNotFound
	}

	return session, nil
}

// Delete removes a session. Unknown tokens are ignored.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}

// Close drops all sessions.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	s.sessions = make(map[string]model.Session)
	s.mu.Unlock()
}
