package catalog

import (
	"context"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/validate"
	"slices"
	"strings"
)

// StaticCatalog is an immutable in-memory implementation of the
// RestaurantCatalog port. It is loaded once at start-up and is safe for
// concurrent readers.
type StaticCatalog struct {
	restaurants []domain.Restaurant
	byID        map[string]int
}

// NewStaticCatalog validates every record and indexes it by id.
// Record order is preserved; duplicate ids are rejected.
func NewStaticCatalog(restaurants []domain.Restaurant) (*StaticCatalog, error) {
	c := &StaticCatalog{
		restaurants: make([]domain.Restaurant, 0, len(restaurants)),
		byID:        make(map[string]int, len(restaurants)),
	}

	for i, r := range restaurants {
		r.ID = strings.TrimSpace(r.ID)
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("catalog: invalid restaurant at index %d (id=%q): %w", i, r.ID, err)
		}
		if _, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate restaurant id %q at index %d", r.ID, i)
		}
		c.byID[r.ID] = len(c.restaurants)
		c.restaurants = append(c.restaurants, r)
	}

	return c, nil
}

// Return a copy of every restaurant in catalog order.
func (c *StaticCatalog) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	return slices.Clone(c.restaurants), nil
}

func (c *StaticCatalog) GetRestaurant(_ context.Context, id string) (domain.Restaurant, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("%w: %q", domain.ErrRestaurantNotFound, id)
	}
	return c.restaurants[i], nil
}

func (c *StaticCatalog) Len() int { return len(c.restaurants) }
