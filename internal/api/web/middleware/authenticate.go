package middleware

import (
	"context"
	"net/http"

	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

// SessionService resolves session tokens to user ids.
type SessionService interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// Authenticate resolves the session cookie and injects the user id into
// the request context. Anonymous requests are redirected to the sign-in
// page with no side effects; the redirect fires before any handler runs,
// so an anonymous request can never observe NotFound or Forbidden.
type Authenticate struct {
	sessionService SessionService
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessionService SessionService, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		sessionService: sessionService,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Handle wraps a protected handler.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		userID, err := m.sessionService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			m.logger.Debug("web middleware: session token did not resolve",
				"error", err.Error())
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
