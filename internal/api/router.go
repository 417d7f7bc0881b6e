package api

import (
	"net/http"
	"restaurant-finder-service/internal/api/handlers"
	"restaurant-finder-service/internal/platform/metrics"
	"restaurant-finder-service/internal/ports"
)

// Dependencies the HTTP layer needs. Handlers only see the ports.
type Deps struct {
	Geocoder      ports.Geocoder
	Catalog       ports.RestaurantCatalog
	Favorites     ports.FavoritesStore
	Users         ports.UserRepository
	Sessions      ports.SessionManager
	SecureCookies bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Catalog: d.Catalog}
	restaurantHandler := &handlers.RestaurantHandler{
		Geocoder: d.Geocoder,
		Catalog:  d.Catalog,
	}
	favoritesHandler := &handlers.FavoritesHandler{
		Store:    d.Favorites,
		Catalog:  d.Catalog,
		Sessions: d.Sessions,
	}
	authHandler := &handlers.AuthHandler{
		Users:         d.Users,
		Sessions:      d.Sessions,
		SecureCookies: d.SecureCookies,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/api/restaurants", restaurantHandler.Search)
	mux.HandleFunc("/api/restaurants/favorites", favoritesHandler.Handle)
	mux.HandleFunc("/api/restaurants/{id}", restaurantHandler.Get)

	mux.HandleFunc("/api/auth/signup", authHandler.Signup)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)
	mux.HandleFunc("/api/auth/session", authHandler.Session)

	return requestIDMiddleware(loggingMiddleware(mux))
}
