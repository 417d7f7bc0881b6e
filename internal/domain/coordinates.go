package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates validates an explicit latitude/longitude pair and passes it
// through unchanged when it is in range.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// Validate reports ErrInvalidCoordinates when latitude is outside [-90, 90]
// or longitude is outside [-180, 180]. NaN never validates.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v must be between -90 and 90", ErrInvalidCoordinates, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v must be between -180 and 180", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}
