package services

import (
	"context"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
	"strings"
)

type FavoritesResult struct {
	// Stored restaurant ids in the order they were added.
	IDs []string
	// Catalog records for the ids that still exist in the catalog.
	Restaurants []domain.Restaurant
}

func ListFavorites(
	ctx context.Context,
	userID string,
	store ports.FavoritesStore,
	catalog ports.RestaurantCatalog,
) (_ *FavoritesResult, err error) {
	defer obs.Time(ctx, "services.ListFavorites")(&err)

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	ids, err := store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(ids))
	for _, id := range ids {
		r, err := catalog.GetRestaurant(ctx, id)
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list favorites: get restaurant %q: %w", id, err)
		}
		restaurants = append(restaurants, r)
	}

	return &FavoritesResult{IDs: ids, Restaurants: restaurants}, nil
}

// AddFavorite stores restaurantID for the user after checking it exists in
// the catalog. Adding an existing favorite is a no-op.
func AddFavorite(
	ctx context.Context,
	userID string,
	restaurantID string,
	store ports.FavoritesStore,
	catalog ports.RestaurantCatalog,
) (err error) {
	defer obs.Time(ctx, "services.AddFavorite")(&err)

	if userID == "" {
		return domain.ErrUnauthenticated
	}

	restaurantID = strings.TrimSpace(restaurantID)
	if _, err := catalog.GetRestaurant(ctx, restaurantID); err != nil {
		return fmt.Errorf("add favorite %q: %w", restaurantID, err)
	}

	if err := store.AddFavorite(ctx, userID, restaurantID); err != nil {
		return fmt.Errorf("add favorite %q: %w", restaurantID, err)
	}
	return nil
}

// RemoveFavorite deletes restaurantID from the user's favorites. Ids that
// are no longer in the catalog can still be removed.
func RemoveFavorite(
	ctx context.Context,
	userID string,
	restaurantID string,
	store ports.FavoritesStore,
) (err error) {
	defer obs.Time(ctx, "services.RemoveFavorite")(&err)

	if userID == "" {
		return domain.ErrUnauthenticated
	}

	restaurantID = strings.TrimSpace(restaurantID)
	if err := store.RemoveFavorite(ctx, userID, restaurantID); err != nil {
		return fmt.Errorf("remove favorite %q: %w", restaurantID, err)
	}
	return nil
}
