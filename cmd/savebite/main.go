// Package main запускает HTTP-сервер админ-панели SaveBite.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/savebite-admin/internal/config"
	"github.com/mmeshcher/savebite-admin/internal/fixture"
	"github.com/mmeshcher/savebite-admin/internal/handler"
	"github.com/mmeshcher/savebite-admin/internal/identity"
	"github.com/mmeshcher/savebite-admin/internal/middleware"
	"github.com/mmeshcher/savebite-admin/internal/service"
	"github.com/mmeshcher/savebite-admin/internal/session"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store := fixture.NewStore()

	sessions, err := session.NewManager(cfg.SessionStoragePath)
	if err != nil {
		sugar.Fatalw("session storage initialization error", "error", err.Error())
	}

	var identityClient service.Identity
	if cfg.IdentitySystemAddress != "" {
		identityClient = identity.NewClient(cfg.IdentitySystemAddress)
	}

	svc := service.NewService(store, sessions, identityClient, cfg.AdminPassword)

	authMiddleware := middleware.NewAuthMiddleware(sessions)
	h := handler.NewHandler(svc, logger, authMiddleware)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting savebite admin server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
