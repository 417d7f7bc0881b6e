package services

import (
	"cmp"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/geo"
)

// DefaultSearchLimit caps the number of restaurants returned by a search.
const DefaultSearchLimit = 5

// RankNearby orders the catalog by great-circle distance from origin and
// keeps the first limit entries.
//
// Restaurants at equal distance keep their catalog order (stable sort).
// A non-positive limit yields an empty result and a limit larger than the
// catalog returns every restaurant. The catalog slice is never modified.
func RankNearby(origin domain.Coordinates, catalog []domain.Restaurant, limit int) []domain.RankedRestaurant {
	if limit <= 0 || len(catalog) == 0 {
		return []domain.RankedRestaurant{}
	}

	ranked := make([]domain.RankedRestaurant, 0, len(catalog))
	for _, r := range catalog {
		ranked = append(ranked, domain.RankedRestaurant{
			Restaurant: r,
			DistanceKm: geo.DistanceKm(origin, r.Location()),
		})
	}

	ranked = SortBy(ranked, func(a, b domain.RankedRestaurant) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return ranked[:min(limit, len(ranked))]
}
