package ports

import (
	"context"
	"restaurant-finder-service/internal/domain"
)

// Port: read-only access to the restaurant catalog.
// Implementations must not hand out slices callers could use to mutate shared state.
type RestaurantCatalog interface {
	// Return every restaurant in catalog order.
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	// Return a single restaurant, or domain.ErrRestaurantNotFound.
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
}
