// Package router wires the HTTP route table.
package router

import (
	"net/http"

	"github.com/ashabalin/diary-server/internal/api/web/handler"
	"github.com/ashabalin/diary-server/internal/api/web/middleware"
	"github.com/ashabalin/diary-server/internal/api/web/view"
	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
	"github.com/ashabalin/diary-server/internal/service"
)

// Router builds the HTTP handler tree for the diary application.
type Router struct {
	authService    *service.Auth
	cardService    *service.Card
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	cardService *service.Card,
	contextManager model.ContextManager,
	cookieName string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		cardService:    cardService,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Register builds the route table with logging on every route and
// session authentication on the protected ones.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.cookieName, r.logger)

	v := view.New()
	authHandler := handler.NewAuth(r.authService, v, r.cookieName, r.logger)
	cardHandler := handler.NewCard(r.cardService, r.contextManager, v, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", authHandler.LoginForm)
	mux.HandleFunc("POST /{$}", authHandler.Login)
	mux.HandleFunc("GET /reg", authHandler.RegisterForm)
	mux.HandleFunc("POST /reg", authHandler.Register)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	// Only the submission needs a session; the empty form does not.
	mux.HandleFunc("GET /form_create", cardHandler.CreateForm)

	mux.Handle("GET /index", authenticate.Handle(http.HandlerFunc(cardHandler.List)))
	mux.Handle("GET /card/{id}", authenticate.Handle(http.HandlerFunc(cardHandler.View)))
	mux.Handle("GET /create", authenticate.Handle(http.HandlerFunc(cardHandler.CreateForm)))
	mux.Handle("POST /form_create", authenticate.Handle(http.HandlerFunc(cardHandler.Create)))

	return logging.Handle(mux)
}
