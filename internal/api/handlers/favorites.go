package handlers

import (
	"errors"
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/metrics"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"strings"
)

// FavoritesHandler manages the signed-in user's favorite restaurants.
type FavoritesHandler struct {
	Store    ports.FavoritesStore
	Catalog  ports.RestaurantCatalog
	Sessions ports.SessionManager
}

func (h *FavoritesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		methodNotAllowed(w, r, "GET, POST, DELETE")
	}
}

func (h *FavoritesHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	fav, err := services.ListFavorites(r.Context(), userID, h.Store, h.Catalog)
	if err != nil {
		writeInternalError(w, r, "list favorites", err)
		return
	}

	res := dto.FavoritesResponse{
		Favorites:   fav.IDs,
		Restaurants: make([]dto.RestaurantResponse, 0, len(fav.Restaurants)),
		Count:       len(fav.IDs),
	}
	for _, rest := range fav.Restaurants {
		res.Restaurants = append(res.Restaurants, toRestaurantResponse(rest))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FavoritesHandler) add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req dto.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.RestaurantID) == "" {
		writeError(w, r, http.StatusBadRequest, "restaurantId is required")
		return
	}

	err := services.AddFavorite(r.Context(), userID, req.RestaurantID, h.Store, h.Catalog)
	if errors.Is(err, domain.ErrRestaurantNotFound) {
		writeError(w, r, http.StatusNotFound, domain.ErrRestaurantNotFound.Error())
		return
	}
	if err != nil {
		writeInternalError(w, r, "add favorite", err)
		return
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("add").Inc()
	writeJSON(w, r, http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Restaurant added to favorites",
	})
}

func (h *FavoritesHandler) remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	restaurantID := strings.TrimSpace(r.URL.Query().Get("restaurantId"))
	if restaurantID == "" {
		writeError(w, r, http.StatusBadRequest, "restaurantId is required")
		return
	}

	if err := services.RemoveFavorite(r.Context(), userID, restaurantID, h.Store); err != nil {
		writeInternalError(w, r, "remove favorite", err)
		return
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("remove").Inc()
	writeJSON(w, r, http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Restaurant removed from favorites",
	})
}

func (h *FavoritesHandler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := sessionUserID(r, h.Sessions)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
		return "", false
	}
	return userID, true
}
