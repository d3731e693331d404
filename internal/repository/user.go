package repository

import (
	"context"
	"errors"

	"github.com/notedrop/notedrop-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence over the flat-file store.
type UserRepository struct {
	users *Collection[model.User]
}

// NewUserRepository creates a UserRepository backed by the file at path.
func NewUserRepository(path string) *UserRepository {
	return &UserRepository{users: NewCollection[model.User](path)}
}

// GetByEmail returns the user with the given email. Matching is
// case-sensitive; "A@x.com" and "a@x.com" are distinct accounts.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := r.users.Load()
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// Create appends a new user, enforcing email uniqueness with a scan of
// the existing records before the rewrite.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	return r.users.Mutate(func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, ErrDuplicateEmail
			}
		}
		return append(users, user), nil
	})
}
