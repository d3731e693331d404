package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/notedrop/notedrop-go/internal/crypto"
	"github.com/notedrop/notedrop-go/internal/model"
)

type contextKey string

const sessionUserKey contextKey = "sessionUser"

// TokenCookie is the name of the session cookie.
const TokenCookie = "token"

// CookieAuth returns middleware that verifies the session token cookie.
// A missing cookie and a bad token both end the request with 401; only
// the message differs, matching what clients already key on.
func CookieAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, "Unauthorized")
				return
			}

			claims, err := crypto.ValidateToken(cookie.Value, secret)
			if err != nil {
				writeAuthError(w, "Invalid Token")
				return
			}

			user := model.SessionUser{ID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), sessionUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUserFromContext extracts the authenticated identity placed in
// the context by CookieAuth.
func SessionUserFromContext(ctx context.Context) (model.SessionUser, bool) {
	user, ok := ctx.Value(sessionUserKey).(model.SessionUser)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.MessageResponse{Message: msg, Success: false})
}
