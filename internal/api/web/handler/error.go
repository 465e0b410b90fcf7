package handler

import (
	"errors"
	"net/http"

	"github.com/ashabalin/diary-server/internal/api/web/view"
	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

// errorPage is the data context for error.html.
type errorPage struct {
	Code    int
	Message string
}

// handleError translates a service error into the response. A missing
// card and a foreign card get distinct pages; everything else is a 500.
func handleError(w http.ResponseWriter, v *view.View, logger *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		renderErrorPage(w, v, logger, http.StatusNotFound, "card not found")
	case errors.Is(err, model.ErrForbidden):
		renderErrorPage(w, v, logger, http.StatusForbidden, "you do not have permission to view this card")
	default:
		logger.Error("web handler: request failed",
			"error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func renderErrorPage(w http.ResponseWriter, v *view.View, logger *logger.Logger, code int, message string) {
	if err := v.Render(w, code, "error.html", errorPage{Code: code, Message: message}); err != nil {
		logger.Error("web handler: failed to render error page",
			"error", err.Error())
	}
}
