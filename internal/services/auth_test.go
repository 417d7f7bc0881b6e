package services

import (
	"context"
	"errors"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/domain"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	PasswordHashCost = bcrypt.MinCost
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()

	u, err := Signup(ctx, SignupRequest{Email: "  Ada@Example.COM ", Password: "secret1", Name: " Ada "}, users)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.Email != "ada@example.com" || u.Name != "Ada" {
		t.Fatalf("expected normalized user, got %+v", u)
	}
	if !strings.HasPrefix(u.ID, "user_") {
		t.Fatalf("unexpected id %q", u.ID)
	}
	if u.PasswordHash == "secret1" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	got, err := Login(ctx, "ADA@example.com", "secret1", users)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("expected %s, got %s", u.ID, got.ID)
	}
}

func TestSignupRejects(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()

	if _, err := Signup(ctx, SignupRequest{Email: "bob@example.com", Password: "secret1", Name: "Bob"}, users); err != nil {
		t.Fatalf("seed signup: %v", err)
	}

	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
	}{
		{"duplicate email any case", SignupRequest{Email: "BOB@example.com", Password: "secret1", Name: "Bob"}, domain.ErrEmailTaken},
		{"bad email", SignupRequest{Email: "not-an-email", Password: "secret1", Name: "X"}, domain.ErrInvalidSignup},
		{"short password", SignupRequest{Email: "x@example.com", Password: "12345", Name: "X"}, domain.ErrInvalidSignup},
		{"missing name", SignupRequest{Email: "x@example.com", Password: "secret1", Name: "  "}, domain.ErrInvalidSignup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Signup(ctx, tt.req, users); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()
	if _, err := Signup(ctx, SignupRequest{Email: "c@example.com", Password: "secret1", Name: "C"}, users); err != nil {
		t.Fatalf("seed signup: %v", err)
	}

	if _, err := Login(ctx, "c@example.com", "wrong", users); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := Login(ctx, "nobody@example.com", "secret1", users); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
