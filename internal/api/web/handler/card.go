package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ashabalin/diary-server/internal/api/web/view"
	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

// CardService defines card operations for the authenticated user.
type CardService interface {
	CreateCard(ctx context.Context, params model.CreateCardParams) (model.Card, error)
	GetCard(ctx context.Context, userID, cardID int64) (model.Card, error)
	ListCards(ctx context.Context, userID int64) ([]model.Card, error)
}

// indexPage is the data context for index.html.
type indexPage struct {
	Cards []model.Card
}

// cardPage is the data context for card.html.
type cardPage struct {
	Card model.Card
}

// Card handles the card list, view and creation routes. All of them sit
// behind the authentication middleware.
type Card struct {
	service        CardService
	contextManager model.ContextManager
	view           *view.View
	logger         *logger.Logger
}

// NewCard creates a new Card handler.
func NewCard(service CardService, contextManager model.ContextManager, view *view.View, logger *logger.Logger) *Card {
	return &Card{
		service:        service,
		contextManager: contextManager,
		view:           view,
		logger:         logger,
	}
}

// userID pulls the authenticated user out of the request context. The
// middleware guarantees it is present; a miss means the route was wired
// without authentication, so fall back to the login redirect.
func (h *Card) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
	}
	return userID, ok
}

// List renders the user's cards in insertion order.
func (h *Card) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	cards, err := h.service.ListCards(r.Context(), userID)
	if err != nil {
		h.logger.Error("Card handler: failed to list cards",
			"user_id", userID,
			"error", err.Error())
		handleError(w, h.view, h.logger, err)
		return
	}

	if err := h.view.Render(w, http.StatusOK, "index.html", indexPage{Cards: cards}); err != nil {
		h.logger.Error("Card handler: failed to render card list",
			"error", err.Error())
	}
}

// View renders one card. Missing cards are a 404; cards owned by someone
// else are a 403.
func (h *Card) View(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	cardID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handleError(w, h.view, h.logger, model.ErrNotFound)
		return
	}

	card, err := h.service.GetCard(r.Context(), userID, cardID)
	if err != nil {
		handleError(w, h.view, h.logger, err)
		return
	}

	if err := h.view.Render(w, http.StatusOK, "card.html", cardPage{Card: card}); err != nil {
		h.logger.Error("Card handler: failed to render card",
			"card_id", cardID,
			"error", err.Error())
	}
}

// CreateForm renders the empty creation form. It touches neither the
// store nor the session, so it is served to anonymous visitors too;
// only the submission requires one.
func (h *Card) CreateForm(w http.ResponseWriter, r *http.Request) {
	if err := h.view.Render(w, http.StatusOK, "create_card.html", nil); err != nil {
		h.logger.Error("Card handler: failed to render creation form",
			"error", err.Error())
	}
}

// Create persists a card owned by the session user and redirects to the
// list. There is no acknowledgement page.
func (h *Card) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	params := model.CreateCardParams{
		UserID:   userID,
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		Body:     r.FormValue("text"),
	}

	h.logger.Debug("Card handler: processing card creation",
		"user_id", userID)

	if _, err := h.service.CreateCard(r.Context(), params); err != nil {
		h.logger.Error("Card handler: card creation failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, h.view, h.logger, err)
		return
	}

	http.Redirect(w, r, "/index", http.StatusFound)
}
