package services

import (
	"context"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/platform/validate"
	"restaurant-finder-service/internal/ports"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost for new password hashes.
var PasswordHashCost = bcrypt.DefaultCost

type SignupRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"`
	Name     string `validate:"required,max=100"`
}

// NormalizeEmail lower-cases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Signup registers a new user. Emails are unique case-insensitively.
func Signup(ctx context.Context, req SignupRequest, users ports.UserRepository) (_ domain.User, err error) {
	defer obs.Time(ctx, "services.Signup")(&err)

	req.Email = NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignup, err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	user := domain.User{
		ID:           "user_" + uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.CreateUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns the matching user. Unknown emails
// and wrong passwords both fail with domain.ErrInvalidCredentials.
func Login(ctx context.Context, email, password string, users ports.UserRepository) (_ domain.User, err error) {
	defer obs.Time(ctx, "services.Login")(&err)

	user, err := users.FindUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}
