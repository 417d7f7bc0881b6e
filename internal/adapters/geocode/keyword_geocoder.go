package geocode

import (
	"context"
	"restaurant-finder-service/internal/domain"
	"strings"
)

// DefaultCenter is returned when no keyword matches (San Francisco city center).
var DefaultCenter = domain.Coordinates{Lat: 37.7749, Lon: -122.4194}

type keywordEntry struct {
	keyword string
	coords  domain.Coordinates
}

// Scan order is part of the contract: the first keyword contained in the
// input wins. ZIP codes are scanned before neighborhood names.
var keywordTable = []keywordEntry{
	{"94102", domain.Coordinates{Lat: 37.7813, Lon: -122.4167}},
	{"94103", domain.Coordinates{Lat: 37.7726, Lon: -122.4119}},
	{"94104", domain.Coordinates{Lat: 37.7914, Lon: -122.4020}},
	{"94105", domain.Coordinates{Lat: 37.7894, Lon: -122.3953}},
	{"94107", domain.Coordinates{Lat: 37.7658, Lon: -122.3970}},
	{"94108", domain.Coordinates{Lat: 37.7920, Lon: -122.4080}},
	{"94109", domain.Coordinates{Lat: 37.7942, Lon: -122.4215}},
	{"94110", domain.Coordinates{Lat: 37.7486, Lon: -122.4153}},
	{"94117", domain.Coordinates{Lat: 37.7709, Lon: -122.4420}},
	{"94118", domain.Coordinates{Lat: 37.7822, Lon: -122.4617}},
	{"94122", domain.Coordinates{Lat: 37.7586, Lon: -122.4859}},
	{"94123", domain.Coordinates{Lat: 37.8008, Lon: -122.4358}},
	{"94133", domain.Coordinates{Lat: 37.8009, Lon: -122.4103}},
	{"san francisco", domain.Coordinates{Lat: 37.7749, Lon: -122.4194}},
	{"downtown", domain.Coordinates{Lat: 37.7879, Lon: -122.4074}},
	{"mission", domain.Coordinates{Lat: 37.7599, Lon: -122.4148}},
	{"soma", domain.Coordinates{Lat: 37.7785, Lon: -122.3950}},
	{"marina", domain.Coordinates{Lat: 37.8025, Lon: -122.4382}},
	{"castro", domain.Coordinates{Lat: 37.7609, Lon: -122.4350}},
	{"haight", domain.Coordinates{Lat: 37.7692, Lon: -122.4481}},
	{"north beach", domain.Coordinates{Lat: 37.8060, Lon: -122.4103}},
	{"chinatown", domain.Coordinates{Lat: 37.7941, Lon: -122.4078}},
	{"financial district", domain.Coordinates{Lat: 37.7946, Lon: -122.3999}},
}

// KeywordGeocoder implements ports.Geocoder with a fixed keyword lookup
// table for a single city. It is a stand-in for a real geocoding API and
// never fails: unmatched input resolves to DefaultCenter.
//
// The zero value is ready to use and safe for concurrent use.
type KeywordGeocoder struct{}

func NewKeywordGeocoder() *KeywordGeocoder {
	return &KeywordGeocoder{}
}

func (g *KeywordGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, error) {
	return Resolve(address), nil
}

// Resolve maps address text to the coordinates of the first table keyword it
// contains (case-insensitive substring match), or DefaultCenter.
func Resolve(address string) domain.Coordinates {
	lower := strings.ToLower(address)
	for _, e := range keywordTable {
		if strings.Contains(lower, e.keyword) {
			return e.coords
		}
	}
	return DefaultCenter
}
