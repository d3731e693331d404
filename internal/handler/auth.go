package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/notedrop/notedrop-go/internal/middleware"
	"github.com/notedrop/notedrop-go/internal/model"
	"github.com/notedrop/notedrop-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and sessions.
type AuthHandler struct {
	service  *service.AuthService
	tokenTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler. tokenTTL doubles as the
// session cookie lifetime.
func NewAuthHandler(svc *service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: svc, tokenTTL: tokenTTL}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("Request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse("All fields required"))
		case errors.Is(err, service.ErrUserExists):
			writeJSON(w, http.StatusBadRequest, errorResponse("User already exists"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "User registered", Success: true})
}

// HandleLogin handles POST /login requests. On success the session
// token is set as an HTTP-only cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("Request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusBadRequest, errorResponse("User not found"))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid credentials"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Server Error"))
		}
		return
	}

	// Secure is off: the token has to flow over the plain-http dev
	// origin. Not readable by client script either way.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   false,
	})

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Login successful", Success: true})
}

// HandleLogout handles POST /logout requests. Clearing the cookie is
// all logout does; an already-issued token stays valid until expiry.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Logged out", Success: true})
}

// HandleProfile handles GET /profile requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.SessionUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, model.ProfileResponse{
		Message: "Profile data",
		Success: true,
		User:    user,
	})
}
