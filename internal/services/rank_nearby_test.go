package services

import (
	"fmt"
	"restaurant-finder-service/internal/domain"
	"slices"
	"testing"
)

func restaurantAt(id string, lat, lon float64) domain.Restaurant {
	return domain.Restaurant{ID: id, Name: "R" + id, Latitude: lat, Longitude: lon}
}

func TestRankNearbyCapsAndSorts(t *testing.T) {
	origin := domain.Coordinates{Lat: 37.7749, Lon: -122.4194}

	// 20 restaurants spread north of the origin in reverse distance order.
	catalog := make([]domain.Restaurant, 0, 20)
	for i := 20; i >= 1; i-- {
		catalog = append(catalog, restaurantAt(fmt.Sprint(i), origin.Lat+float64(i)*0.01, origin.Lon))
	}

	got := RankNearby(origin, catalog, DefaultSearchLimit)
	if len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}

	wantIDs := []string{"1", "2", "3", "4", "5"}
	for i, r := range got {
		if r.Restaurant.ID != wantIDs[i] {
			t.Fatalf("position %d: expected id %s, got %s", i, wantIDs[i], r.Restaurant.ID)
		}
		if i > 0 && got[i-1].DistanceKm > r.DistanceKm {
			t.Fatalf("results not sorted at %d: %v > %v", i, got[i-1].DistanceKm, r.DistanceKm)
		}
	}

	// Every excluded restaurant is at least as far as the last included one.
	last := got[len(got)-1].DistanceKm
	for _, r := range RankNearby(origin, catalog, len(catalog))[5:] {
		if r.DistanceKm < last {
			t.Fatalf("excluded %s is closer (%v) than included max %v", r.Restaurant.ID, r.DistanceKm, last)
		}
	}
}

func TestRankNearbyTiesKeepCatalogOrder(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lon: 0}
	catalog := []domain.Restaurant{
		restaurantAt("far", 0, 1),
		restaurantAt("b", 0, 0.5),
		restaurantAt("a", 0, -0.5),
		restaurantAt("c", 0.5, 0),
	}

	got := RankNearby(origin, catalog, 3)

	// b and a are exactly equidistant (mirror images over the meridian).
	if got[0].Restaurant.ID != "b" || got[1].Restaurant.ID != "a" {
		t.Fatalf("expected tie order b, a; got %s, %s", got[0].Restaurant.ID, got[1].Restaurant.ID)
	}
}

func TestRankNearbySameCoordinatesKeepCatalogOrder(t *testing.T) {
	origin := domain.Coordinates{Lat: 37.7749, Lon: -122.4194}
	catalog := []domain.Restaurant{
		restaurantAt("z", 37.7800, -122.4100),
		restaurantAt("m", 37.7900, -122.4000),
		restaurantAt("b", 37.7800, -122.4100),
		restaurantAt("a", 37.7800, -122.4100),
	}

	got := RankNearby(origin, catalog, 3)

	wantIDs := []string{"z", "b", "a"}
	for i, want := range wantIDs {
		if got[i].Restaurant.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].Restaurant.ID)
		}
	}
	if got[0].DistanceKm != got[1].DistanceKm || got[1].DistanceKm != got[2].DistanceKm {
		t.Fatalf("expected equal distances, got %v %v %v", got[0].DistanceKm, got[1].DistanceKm, got[2].DistanceKm)
	}
}

func TestRankNearbyLimitEdges(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lon: 0}
	catalog := []domain.Restaurant{
		restaurantAt("1", 0, 0.2),
		restaurantAt("2", 0, 0.1),
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"exact", 2, 2},
		{"larger than catalog", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankNearby(origin, catalog, tt.limit)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d results, got %d", tt.want, len(got))
			}
		})
	}

	if got := RankNearby(origin, nil, 5); len(got) != 0 {
		t.Fatalf("expected empty result for empty catalog, got %d", len(got))
	}
}

func TestRankNearbyDoesNotMutateCatalog(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lon: 0}
	catalog := []domain.Restaurant{
		restaurantAt("far", 0, 2),
		restaurantAt("near", 0, 1),
	}
	before := slices.Clone(catalog)

	_ = RankNearby(origin, catalog, 5)

	if !slices.Equal(before, catalog) {
		t.Fatalf("catalog was reordered: %v", catalog)
	}
}
