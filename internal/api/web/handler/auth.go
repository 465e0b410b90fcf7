package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ashabalin/diary-server/internal/api/web/view"
	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

// loginErrorMessage deliberately reveals nothing about which field was wrong.
const loginErrorMessage = "Incorrect username or password"

// AuthService defines registration, login and logout operations.
type AuthService interface {
	Register(ctx context.Context, login, password string) (model.User, error)
	Login(ctx context.Context, login, password string) (model.Session, error)
	Logout(ctx context.Context, token string) error
}

// loginPage is the data context for login.html.
type loginPage struct {
	Error string
}

// Auth handles the login, registration and logout routes.
type Auth struct {
	service    AuthService
	view       *view.View
	cookieName string
	logger     *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, view *view.View, cookieName string, logger *logger.Logger) *Auth {
	return &Auth{
		service:    service,
		view:       view,
		cookieName: cookieName,
		logger:     logger,
	}
}

// LoginForm renders the sign-in page.
func (h *Auth) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.view.Render(w, http.StatusOK, "login.html", loginPage{}); err != nil {
		h.logger.Error("Auth handler: failed to render login page",
			"error", err.Error())
	}
}

// Login checks the submitted credentials. A match opens a session and
// redirects to the card list; a miss re-renders the form with the
// generic error message and no session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	login := r.FormValue("email")
	password := r.FormValue("password")

	h.logger.Debug("Auth handler: processing login request",
		"login", login)

	session, err := h.service.Login(r.Context(), login, password)
	if errors.Is(err, model.ErrInvalidCredentials) {
		if err := h.view.Render(w, http.StatusOK, "login.html", loginPage{Error: loginErrorMessage}); err != nil {
			h.logger.Error("Auth handler: failed to render login page",
				"error", err.Error())
		}
		return
	}
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"login", login,
			"error", err.Error())
		handleError(w, h.view, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/index", http.StatusFound)
}

// RegisterForm renders the registration page.
func (h *Auth) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if err := h.view.Render(w, http.StatusOK, "registration.html", nil); err != nil {
		h.logger.Error("Auth handler: failed to render registration page",
			"error", err.Error())
	}
}

// Register creates the user unconditionally and redirects to sign-in.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	login := r.FormValue("email")
	password := r.FormValue("password")

	h.logger.Debug("Auth handler: processing registration request",
		"login", login)

	if _, err := h.service.Register(r.Context(), login, password); err != nil {
		h.logger.Error("Auth handler: registration failed",
			"login", login,
			"error", err.Error())
		handleError(w, h.view, h.logger, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout drops the session, if any, and redirects to sign-in. Calling it
// without a session is a no-op that still redirects.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		token = cookie.Value
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		handleError(w, h.view, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
