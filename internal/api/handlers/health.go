package handlers

import (
	"net/http"
	"restaurant-finder-service/internal/ports"
)

// HealthHandler reports liveness and whether the catalog is readable.
type HealthHandler struct {
	Catalog ports.RestaurantCatalog
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	all, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeInternalError(w, r, "health: list catalog", err)
		return
	}

	res := map[string]any{"status": "ok", "restaurants": len(all)}
	writeJSON(w, r, http.StatusOK, res)
}
