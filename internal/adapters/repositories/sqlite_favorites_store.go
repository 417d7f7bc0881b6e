package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/platform/obs"
)

// SQLite-backed implementation of the FavoritesStore port.
type SqliteFavoritesStore struct {
	DB *sql.DB
}

func NewSqliteFavoritesStore(db *sql.DB) *SqliteFavoritesStore {
	return &SqliteFavoritesStore{DB: db}
}

func (s *SqliteFavoritesStore) ListFavorites(ctx context.Context, userID string) (_ []string, err error) {
	defer obs.Time(ctx, "favorites.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("favorites store: db is nil")
	}

	query := `
	SELECT restaurant_id
	FROM favorites
	WHERE user_id = ?
	ORDER BY seq, restaurant_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	return scanFavoriteIDs(rows)
}

func (s *SqliteFavoritesStore) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.DB == nil {
		return errors.New("favorites store: db is nil")
	}
	if userID == "" || restaurantID == "" {
		return errors.New("add favorite: user id and restaurant id must be non-empty")
	}

	query := `
	INSERT INTO favorites (user_id, restaurant_id, seq)
	SELECT ?, ?, COALESCE(MAX(seq), 0) + 1
	FROM favorites
	WHERE user_id = ?
	ON CONFLICT (user_id, restaurant_id) DO NOTHING;
	`
	if _, err := s.DB.ExecContext(ctx, query, userID, restaurantID, userID); err != nil {
		return fmt.Errorf("add favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}

func (s *SqliteFavoritesStore) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.DB == nil {
		return errors.New("favorites store: db is nil")
	}

	query := `
	DELETE FROM favorites
	WHERE user_id = ? AND restaurant_id = ?;
	`
	if _, err := s.DB.ExecContext(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("remove favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}

func scanFavoriteIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list favorites: scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: row iteration: %w", err)
	}
	return ids, nil
}
