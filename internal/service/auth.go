package service

import (
	"context"
	"errors"
	"time"

	"github.com/notedrop/notedrop-go/internal/crypto"
	"github.com/notedrop/notedrop-go/internal/model"
	"github.com/notedrop/notedrop-go/internal/repository"
)

var (
	ErrFieldsRequired     = errors.New("all fields required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the credential persistence contract AuthService depends
// on. The flat-file repository satisfies it today; a keyed store can
// replace it without touching handler logic.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, user model.User) error
}

// AuthService handles registration and login.
type AuthService struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user account with a hashed password. The user
// id is the creation wall-clock time in milliseconds; two registrations
// in the same millisecond would collide, a gap inherited from the
// original id scheme.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ErrFieldsRequired
	}

	digest, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := model.User{
		ID:       time.Now().UnixMilli(),
		Name:     req.Name,
		Email:    req.Email,
		Password: digest,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !crypto.VerifyPassword(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(model.SessionUser{ID: user.ID, Email: user.Email}, s.secret, s.tokenTTL)
}
