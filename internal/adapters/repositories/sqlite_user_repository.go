package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"time"
)

// SQLite-backed implementation of the UserRepository port.
type SqliteUserRepository struct {
	DB *sql.DB
}

func NewSqliteUserRepository(db *sql.DB) *SqliteUserRepository {
	return &SqliteUserRepository{DB: db}
}

func (r *SqliteUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	if r.DB == nil {
		return errors.New("sqlite user repository: DB is nil")
	}

	query := `
	INSERT INTO users (id, email, name, password_hash, created_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT DO NOTHING;
	`
	res, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("create user email=%q: %w", user.Email, err)
	}
	return checkInserted(res, user.Email)
}

func (r *SqliteUserRepository) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.DB == nil {
		return domain.User{}, errors.New("sqlite user repository: DB is nil")
	}

	query := `
	SELECT id, email, name, password_hash, created_at
	FROM users
	WHERE email = ?;
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, email), "email", email)
}

func (r *SqliteUserRepository) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	if r.DB == nil {
		return domain.User{}, errors.New("sqlite user repository: DB is nil")
	}

	query := `
	SELECT id, email, name, password_hash, created_at
	FROM users
	WHERE id = ?;
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, id), "id", id)
}

// A conflicting insert affects no rows. The id is a fresh uuid, so the
// conflict is on email.
func checkInserted(res sql.Result, email string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create user email=%q: rows affected: %w", email, err)
	}
	if n == 0 {
		return fmt.Errorf("create user email=%q: %w", email, domain.ErrEmailTaken)
	}
	return nil
}

func scanUser(row *sql.Row, field, value string) (domain.User, error) {
	var u domain.User
	var createdAt int64
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("find user %s=%q: %w", field, value, domain.ErrUserNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user %s=%q: scan row: %w", field, value, err)
	}
	u.CreatedAt = time.Unix(0, createdAt).UTC()
	return u, nil
}
