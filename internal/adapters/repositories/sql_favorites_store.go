package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/platform/obs"
)

// Postgres-backed implementation of the FavoritesStore port.
type SQLFavoritesStore struct {
	DB *sql.DB
}

func NewSQLFavoritesStore(db *sql.DB) *SQLFavoritesStore {
	return &SQLFavoritesStore{DB: db}
}

func (s *SQLFavoritesStore) ListFavorites(ctx context.Context, userID string) (_ []string, err error) {
	defer obs.Time(ctx, "favorites.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("favorites store: db is nil")
	}

	query := `
	SELECT restaurant_id
	FROM favorites
	WHERE user_id = $1
	ORDER BY seq, restaurant_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	return scanFavoriteIDs(rows)
}

func (s *SQLFavoritesStore) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.DB == nil {
		return errors.New("favorites store: db is nil")
	}
	if userID == "" || restaurantID == "" {
		return errors.New("add favorite: user id and restaurant id must be non-empty")
	}

	query := `
	INSERT INTO favorites (user_id, restaurant_id, seq)
	SELECT $1::text, $2::text, COALESCE(MAX(seq), 0) + 1
	FROM favorites
	WHERE user_id = $1
	ON CONFLICT (user_id, restaurant_id) DO NOTHING;
	`
	if _, err := s.DB.ExecContext(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("add favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}

func (s *SQLFavoritesStore) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.DB == nil {
		return errors.New("favorites store: db is nil")
	}

	query := `
	DELETE FROM favorites
	WHERE user_id = $1 AND restaurant_id = $2;
	`
	if _, err := s.DB.ExecContext(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("remove favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}
