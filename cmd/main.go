package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ashabalin/diary-server/internal/api/web/router"
	webServer "github.com/ashabalin/diary-server/internal/api/web/server"
	"github.com/ashabalin/diary-server/internal/api/web/webctx"
	"github.com/ashabalin/diary-server/internal/config"
	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
	"github.com/ashabalin/diary-server/internal/repository/postgres"
	"github.com/ashabalin/diary-server/internal/server"
	"github.com/ashabalin/diary-server/internal/service"
	"github.com/ashabalin/diary-server/internal/session"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	cardRepo := postgres.NewCardRepository(db)

	sessionStore := session.NewMemoryStore()
	defer sessionStore.Close()

	authService := service.NewAuth(userRepo, sessionStore, logger)
	cardService := service.NewCard(cardRepo, userRepo, logger)
	ctxMgr := webctx.NewManager()

	srv := registerWebServer(authService, cardService, ctxMgr, cfg.Session.CookieName, logger, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerWebServer(
	authService *service.Auth,
	cardService *service.Card,
	ctxMgr model.ContextManager,
	cookieName string,
	logger *logger.Logger,
	addr string,
) *webServer.HTTPServer {
	r := router.New(authService, cardService, ctxMgr, cookieName, logger)

	return webServer.NewHTTPServer(r.Register(), addr)
}
