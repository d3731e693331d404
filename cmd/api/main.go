package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/notedrop/notedrop-go/internal/config"
	"github.com/notedrop/notedrop-go/internal/handler"
	"github.com/notedrop/notedrop-go/internal/repository"
	"github.com/notedrop/notedrop-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	userRepo := repository.NewUserRepository(cfg.UsersFile)
	noteRepo := repository.NewNoteRepository(cfg.NotesFile)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	noteService := service.NewNoteService(noteRepo)

	r := handler.NewRouter(handler.RouterConfig{
		Auth:         handler.NewAuthHandler(authService, cfg.TokenTTL),
		Notes:        handler.NewNoteHandler(noteService),
		JWTSecret:    cfg.JWTSecret,
		ClientOrigin: cfg.ClientOrigin,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
