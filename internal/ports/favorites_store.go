package ports

import "context"

// Port: per-user sets of favorite restaurant ids.
type FavoritesStore interface {
	// Return the user's favorite restaurant ids in the order they were added.
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	// Add a favorite. Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, userID, restaurantID string) error
	// Remove a favorite. Removing a non-member is a no-op.
	RemoveFavorite(ctx context.Context, userID, restaurantID string) error
}
