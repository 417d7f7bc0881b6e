package geocode

import (
	"context"
	"restaurant-finder-service/internal/domain"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    domain.Coordinates
	}{
		{"substring match", "Mission District food", domain.Coordinates{Lat: 37.7599, Lon: -122.4148}},
		{"case insensitive", "DOWNTOWN", domain.Coordinates{Lat: 37.7879, Lon: -122.4074}},
		{"multi word keyword", "dinner in North Beach tonight", domain.Coordinates{Lat: 37.8060, Lon: -122.4103}},
		{"zip code", "123 Main St, San Francisco, CA 94110", domain.Coordinates{Lat: 37.7486, Lon: -122.4153}},
		{"fallback", "xyz-nonexistent-place", DefaultCenter},
		{"empty input", "", DefaultCenter},
		// "san francisco" is scanned before "downtown".
		{"first keyword in table wins", "downtown san francisco", domain.Coordinates{Lat: 37.7749, Lon: -122.4194}},
		{"earlier entry beats earlier position", "castro to mission", domain.Coordinates{Lat: 37.7599, Lon: -122.4148}},
		{"zip scanned before neighborhood", "mission 94103", domain.Coordinates{Lat: 37.7726, Lon: -122.4119}},
		// Substring imprecision is intentional: "somalian" contains "soma".
		{"substring imprecision", "somalian cuisine", domain.Coordinates{Lat: 37.7785, Lon: -122.3950}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.address); got != tt.want {
				t.Fatalf("Resolve(%q) = %+v, want %+v", tt.address, got, tt.want)
			}
		})
	}
}

func TestKeywordGeocoderNeverFails(t *testing.T) {
	g := NewKeywordGeocoder()
	for _, in := range []string{"", "   ", "Financial District", "\x00\xff"} {
		c, err := g.Geocode(context.Background(), in)
		if err != nil {
			t.Fatalf("Geocode(%q) returned error: %v", in, err)
		}
		if err := c.Validate(); err != nil {
			t.Fatalf("Geocode(%q) returned invalid coordinates: %v", in, err)
		}
	}
}

func TestDefaultCenter(t *testing.T) {
	want := domain.Coordinates{Lat: 37.7749, Lon: -122.4194}
	if DefaultCenter != want {
		t.Fatalf("DefaultCenter = %+v, want %+v", DefaultCenter, want)
	}
}
