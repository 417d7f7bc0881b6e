package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the users and favorites tables. The statements are
// valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at BIGINT NOT NULL
	);
	`

	createFavoritesQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		user_id TEXT NOT NULL,
		restaurant_id TEXT NOT NULL,
		seq BIGINT NOT NULL,
		PRIMARY KEY (user_id, restaurant_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_favorites_user_seq
	ON favorites(user_id, seq);
	`

	statements := []string{
		createUsersQuery,
		createFavoritesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
