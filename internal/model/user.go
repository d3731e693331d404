package model

// User represents a registered account as persisted in the user store.
// The json tags mirror the on-disk document: Password holds the bcrypt
// digest, never the plaintext.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the identity embedded in a session token and echoed by
// the profile endpoint. It never carries credential material.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// MessageResponse is the uniform response envelope.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ProfileResponse is the payload returned by the profile endpoint.
type ProfileResponse struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}
