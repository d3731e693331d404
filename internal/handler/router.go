package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/notedrop/notedrop-go/internal/middleware"
)

// RouterConfig carries everything NewRouter needs to assemble the
// route table.
type RouterConfig struct {
	Auth         *AuthHandler
	Notes        *NoteHandler
	JWTSecret    string
	ClientOrigin string
}

// NewRouter wires the full route table: public credential endpoints
// behind the rate limiter, logout, and the cookie-authenticated group.
func NewRouter(rc RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{rc.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true, // the session cookie has to cross origins
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", rc.Auth.HandleRegister)
		r.Post("/login", rc.Auth.HandleLogin)
	})

	r.Post("/logout", rc.Auth.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CookieAuth(rc.JWTSecret))
		r.Get("/profile", rc.Auth.HandleProfile)
		r.Post("/create-note", rc.Notes.HandleCreateNote)
		r.Get("/get-notes", rc.Notes.HandleGetNotes)
		r.Patch("/update-note/{noteId}", rc.Notes.HandleUpdateNote)
		r.Delete("/delete-note/{noteId}", rc.Notes.HandleDeleteNote)
	})

	return r
}
