package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds process-wide settings. It is built once at startup and
// passed into components; nothing reads environment variables after Load
// returns.
type Config struct {
	Port         string
	Env          string
	JWTSecret    string
	TokenTTL     time.Duration
	ClientOrigin string
	UsersFile    string
	NotesFile    string
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:     time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		UsersFile:    getEnv("USERS_FILE", "db.json"),
		NotesFile:    getEnv("NOTES_FILE", "notes.json"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
