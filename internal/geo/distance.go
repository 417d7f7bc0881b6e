// Package geo holds the great-circle math used to rank restaurants.
package geo

import (
	"fmt"
	"math"
	"math/big"

	"restaurant-finder-service/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 { return deg * (math.Pi / 180) }

// DistanceKm returns the haversine great-circle distance between a and b.
// Inputs are not range-checked; callers validate coordinates first.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// FormatDistance renders sub-kilometer distances as whole meters ("500m")
// and everything else as kilometers with one decimal ("1.0 km").
//
// Halves round up. Kilometers are rounded on the exact binary value of km:
// 1.25 is an exact tie and gives "1.3 km", while 1.45 is stored just below
// the tie and gives "1.4 km".
func FormatDistance(km float64) string {
	if km < 1 {
		m := km * 1000
		n := math.Floor(m)
		if m-n >= 0.5 {
			n++
		}
		return fmt.Sprintf("%dm", int64(n))
	}
	if math.IsInf(km, 0) || math.IsNaN(km) {
		return fmt.Sprintf("%.1f km", km)
	}

	// tenths = floor(km*10 + 1/2), computed exactly.
	r := new(big.Rat).SetFloat64(km)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom())

	whole, frac := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s.%s km", whole.String(), frac.String())
}
