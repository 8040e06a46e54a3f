package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"programmers-api/internal/config"
	"programmers-api/internal/database"
	"programmers-api/internal/routes"
	"programmers-api/internal/session"
	"programmers-api/internal/xsrf"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Init database
	if err := database.InitDB(cfg.StoragePath); err != nil {
		slog.Error("failed to initialise database", "error", err)
		os.Exit(1)
	}
	slog.Info("database initialised", "path", cfg.StoragePath)

	// Anti-forgery tokens bind to anonymous sessions
	xsrf.Configure(cfg.XSRFSecret, cfg.XSRFLifetime)
	store := session.GetStore()
	store.SetTTL(cfg.SessionTTL)

	// Janitor: drop expired sessions periodically
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			store.PurgeExpired()
		}
	}()

	// Setup the routes (shell page, static assets and the /api surface)
	ginRoutes := routes.SetupRoutes()

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      ginRoutes,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "address", cfg.HTTPServer.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	slog.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server gracefully", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// setupLogger picks the slog handler for the environment: JSON in prod,
// human-readable text everywhere else.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}
