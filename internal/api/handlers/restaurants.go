package handlers

import (
	"errors"
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/geo"
	"restaurant-finder-service/internal/platform/metrics"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"strings"
)

// RestaurantHandler serves nearby-restaurant search and single-record lookup.
type RestaurantHandler struct {
	Geocoder ports.Geocoder
	Catalog  ports.RestaurantCatalog
}

// Search ranks the catalog around an address or a latitude/longitude pair.
// Client errors carry a specific message; anything else is a generic 500.
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()
	req := services.SearchRestaurantsRequest{
		Address:    q.Get("address"),
		Latitude:   q.Get("latitude"),
		Longitude:  q.Get("longitude"),
		Cuisine:    q.Get("cuisine"),
		PriceRange: q.Get("priceRange"),
	}

	result, err := services.SearchRestaurants(r.Context(), req, h.Geocoder, h.Catalog)
	switch {
	case errors.Is(err, domain.ErrMissingParameters):
		metrics.SearchErrorsTotal.WithLabelValues("missing_parameters").Inc()
		writeError(w, r, http.StatusBadRequest, domain.ErrMissingParameters.Error())
		return
	case errors.Is(err, domain.ErrInvalidCoordinates):
		metrics.SearchErrorsTotal.WithLabelValues("invalid_coordinates").Inc()
		writeError(w, r, http.StatusBadRequest, domain.ErrInvalidCoordinates.Error())
		return
	case err != nil:
		metrics.SearchErrorsTotal.WithLabelValues("internal").Inc()
		writeInternalError(w, r, "search restaurants", err)
		return
	}

	metrics.SearchTotal.WithLabelValues(resolutionLabel(result.Query)).Inc()
	metrics.SearchResults.Observe(float64(len(result.Restaurants)))

	res := dto.SearchRestaurantsResponse{
		Restaurants: make([]dto.RankedRestaurantResponse, 0, len(result.Restaurants)),
		Count:       len(result.Restaurants),
		Location: dto.LocationResponse{
			Latitude:  result.Origin.Lat,
			Longitude: result.Origin.Lon,
		},
	}
	for _, rr := range result.Restaurants {
		res.Restaurants = append(res.Restaurants, dto.RankedRestaurantResponse{
			RestaurantResponse: toRestaurantResponse(rr.Restaurant),
			DistanceKm:         rr.DistanceKm,
			Distance:           geo.FormatDistance(rr.DistanceKm),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get returns one catalog record by the {id} path segment.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "restaurant id is required")
		return
	}

	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if errors.Is(err, domain.ErrRestaurantNotFound) {
		writeError(w, r, http.StatusNotFound, domain.ErrRestaurantNotFound.Error())
		return
	}
	if err != nil {
		writeInternalError(w, r, "get restaurant", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRestaurantResponse(rest))
}

func resolutionLabel(q services.LocationQuery) string {
	if _, ok := q.(services.CoordinatesQuery); ok {
		return "coordinates"
	}
	return "address"
}
