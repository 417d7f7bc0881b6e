package services

import (
	"context"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/ports"
	"strconv"
	"strings"
)

// LocationQuery is either an AddressQuery or a CoordinatesQuery.
type LocationQuery interface {
	isLocationQuery()
}

// Free-text location to be resolved by a Geocoder.
type AddressQuery struct {
	Text string
}

// Explicit coordinates supplied by the caller. Not yet range-checked.
type CoordinatesQuery struct {
	Lat float64
	Lon float64
}

func (AddressQuery) isLocationQuery()     {}
func (CoordinatesQuery) isLocationQuery() {}

// BuildLocationQuery selects the query variant from raw request parameters.
//
// A complete latitude/longitude pair takes precedence over an address; the
// address is then ignored. Unparsable coordinates fail with
// domain.ErrInvalidCoordinates. Without a pair or a non-blank address the
// request fails with domain.ErrMissingParameters.
func BuildLocationQuery(address, latitude, longitude string) (LocationQuery, error) {
	latitude = strings.TrimSpace(latitude)
	longitude = strings.TrimSpace(longitude)

	if latitude != "" && longitude != "" {
		lat, err := strconv.ParseFloat(latitude, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: latitude %q is not a number", domain.ErrInvalidCoordinates, latitude)
		}
		lon, err := strconv.ParseFloat(longitude, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: longitude %q is not a number", domain.ErrInvalidCoordinates, longitude)
		}
		return CoordinatesQuery{Lat: lat, Lon: lon}, nil
	}

	if text := strings.TrimSpace(address); text != "" {
		return AddressQuery{Text: text}, nil
	}

	return nil, domain.ErrMissingParameters
}

// ResolveLocation turns a LocationQuery into validated coordinates.
func ResolveLocation(ctx context.Context, q LocationQuery, geocoder ports.Geocoder) (domain.Coordinates, error) {
	switch q := q.(type) {
	case CoordinatesQuery:
		return domain.NewCoordinates(q.Lat, q.Lon)
	case AddressQuery:
		c, err := geocoder.Geocode(ctx, q.Text)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("resolve location: geocode %q: %w", q.Text, err)
		}
		return c, nil
	default:
		return domain.Coordinates{}, domain.ErrMissingParameters
	}
}
