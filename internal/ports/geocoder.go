package ports

import (
	"context"
	"restaurant-finder-service/internal/domain"
)

// Contract for turning free-text location input into coordinates.
type Geocoder interface {
	// Return coordinates for the given address text.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
