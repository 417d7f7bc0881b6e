package ports

import (
	"context"
	"restaurant-finder-service/internal/domain"
)

// Port: a boundary for storing and retrieving registered users.
type UserRepository interface {
	// Persist a new user. Returns domain.ErrEmailTaken on duplicate email.
	CreateUser(ctx context.Context, user domain.User) error
	// Look up a user by lower-cased email, or domain.ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	// Look up a user by id, or domain.ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (domain.User, error)
}
