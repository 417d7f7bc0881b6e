package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"restaurant-finder-service/internal/domain"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

type failingCatalog struct{}

func (failingCatalog) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	return nil, errors.New("open data/restaurants.json: permission denied")
}

func (failingCatalog) GetRestaurant(context.Context, string) (domain.Restaurant, error) {
	return domain.Restaurant{}, errors.New("catalog unavailable")
}

type fixedGeocoder struct{ c domain.Coordinates }

func (g fixedGeocoder) Geocode(context.Context, string) (domain.Coordinates, error) {
	return g.c, nil
}

type stubSessions struct{ userID string }

func (s stubSessions) Issue(userID string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(time.Hour), nil
}

func (s stubSessions) Verify(token string) (string, error) {
	if token != "token-"+s.userID {
		return "", domain.ErrUnauthenticated
	}
	return s.userID, nil
}

type failingStore struct{}

func (failingStore) ListFavorites(context.Context, string) ([]string, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) AddFavorite(context.Context, string, string) error    { return nil }
func (failingStore) RemoveFavorite(context.Context, string, string) error { return nil }

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}

func TestSearchCatalogFailureIsGeneric(t *testing.T) {
	h := &RestaurantHandler{
		Geocoder: fixedGeocoder{c: domain.Coordinates{Lat: 37.7879, Lon: -122.4074}},
		Catalog:  failingCatalog{},
	}

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?address=downtown", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	msg := decodeError(t, rec)
	if msg != "internal server error" {
		t.Fatalf("expected generic message, got %q", msg)
	}
	if strings.Contains(rec.Body.String(), "permission denied") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestSearchValidationSkipsCatalog(t *testing.T) {
	h := &RestaurantHandler{Geocoder: fixedGeocoder{}, Catalog: failingCatalog{}}

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?latitude=91&longitude=0", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != domain.ErrInvalidCoordinates.Error() {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHealthCatalogFailure(t *testing.T) {
	h := &HealthHandler{Catalog: failingCatalog{}}

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFavoritesStoreFailureIsGeneric(t *testing.T) {
	h := &FavoritesHandler{
		Store:    failingStore{},
		Catalog:  failingCatalog{},
		Sessions: stubSessions{userID: "user_1"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/favorites", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-user_1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFavoritesRejectsMalformedBody(t *testing.T) {
	h := &FavoritesHandler{
		Store:    failingStore{},
		Catalog:  failingCatalog{},
		Sessions: stubSessions{userID: "user_1"},
	}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown field", `{"restaurantId":"1","extra":true}`},
		{"two objects", `{"restaurantId":"1"}{"restaurantId":"2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/restaurants/favorites", strings.NewReader(tt.body))
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-user_1"})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestSessionUserID(t *testing.T) {
	sessions := stubSessions{userID: "user_1"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := sessionUserID(req, sessions); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without cookie, got %v", err)
	}

	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-user_1"})
	id, err := sessionUserID(req, sessions)
	if err != nil || id != "user_1" {
		t.Fatalf("expected user_1, got %q err=%v", id, err)
	}
}
