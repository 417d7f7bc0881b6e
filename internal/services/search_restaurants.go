package services

import (
	"context"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
	"strings"
)

type SearchRestaurantsRequest struct {
	Address   string
	Latitude  string
	Longitude string

	// Optional catalog filters applied before ranking.
	Cuisine    string
	PriceRange string
}

type SearchRestaurantsResult struct {
	Origin      domain.Coordinates
	Query       LocationQuery
	Restaurants []domain.RankedRestaurant
}

// SearchRestaurants validates the request, resolves the origin and ranks
// the catalog around it, returning at most DefaultSearchLimit restaurants.
//
// Validation failures are returned before any resolution or catalog access.
func SearchRestaurants(
	ctx context.Context,
	req SearchRestaurantsRequest,
	geocoder ports.Geocoder,
	catalog ports.RestaurantCatalog,
) (_ *SearchRestaurantsResult, err error) {
	defer obs.Time(ctx, "services.SearchRestaurants")(&err)

	q, err := BuildLocationQuery(req.Address, req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}

	origin, err := ResolveLocation(ctx, q, geocoder)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}

	all, err := catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: list catalog: %w", err)
	}

	candidates := all
	if req.Cuisine != "" || req.PriceRange != "" {
		candidates = Filter(all, matchesFilters(req.Cuisine, req.PriceRange))
	}

	return &SearchRestaurantsResult{
		Origin:      origin,
		Query:       q,
		Restaurants: RankNearby(origin, candidates, DefaultSearchLimit),
	}, nil
}

func matchesFilters(cuisine, priceRange string) func(domain.Restaurant) bool {
	cuisine = strings.TrimSpace(cuisine)
	priceRange = strings.TrimSpace(priceRange)
	return func(r domain.Restaurant) bool {
		if cuisine != "" && !strings.EqualFold(r.Cuisine, cuisine) {
			return false
		}
		if priceRange != "" && r.PriceRange != priceRange {
			return false
		}
		return true
	}
}
