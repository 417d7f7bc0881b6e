package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
)

// Postgres-backed implementation of the UserRepository port.
type SQLUserRepository struct {
	DB *sql.DB
}

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{DB: db}
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	if r.DB == nil {
		return errors.New("sql user repository: DB is nil")
	}

	query := `
	INSERT INTO users (id, email, name, password_hash, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT DO NOTHING;
	`
	res, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("create user email=%q: %w", user.Email, err)
	}
	return checkInserted(res, user.Email)
}

func (r *SQLUserRepository) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.DB == nil {
		return domain.User{}, errors.New("sql user repository: DB is nil")
	}

	query := `
	SELECT id, email, name, password_hash, created_at
	FROM users
	WHERE email = $1;
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, email), "email", email)
}

func (r *SQLUserRepository) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	if r.DB == nil {
		return domain.User{}, errors.New("sql user repository: DB is nil")
	}

	query := `
	SELECT id, email, name, password_hash, created_at
	FROM users
	WHERE id = $1;
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, id), "id", id)
}
