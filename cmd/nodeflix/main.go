package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boy-who-codes/nodeflix/internal/config"
	"github.com/boy-who-codes/nodeflix/internal/database"
	"github.com/boy-who-codes/nodeflix/internal/email"
	"github.com/boy-who-codes/nodeflix/internal/logging"
	"github.com/boy-who-codes/nodeflix/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	accessLogger, accessCloser := logging.AccessLogger(cfg.AccessLogPath)
	if accessCloser != nil {
		defer accessCloser.Close()
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	emailClient := email.NewClient(cfg.PostmarkToken, cfg.FromEmail, cfg.BaseURL)

	srv, err := server.New(db, server.Config{
		BaseURL:      cfg.BaseURL,
		TemplatesDir: cfg.TemplatesDir,
		EmailClient:  emailClient,
		AccessLogger: accessLogger,
	}, logger)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := srv.SessionStore().DeleteExpired(); err != nil {
					slog.Error("cleanup expired sessions", "error", err)
				} else if n > 0 {
					slog.Info("cleaned up expired sessions", "count", n)
				}
				srv.RateLimiter().Cleanup()
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		slog.Info("nodeflix starting", "addr", ":"+cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	cleanupCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
