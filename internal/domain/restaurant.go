package domain

// Represents a single record of the read-only restaurant catalog.
// Records are loaded once at start-up and never mutated afterwards.
type Restaurant struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
	PriceRange   string  `json:"priceRange" validate:"oneof=$ $$ $$$ $$$$"`
	OpeningHours string  `json:"openingHours" validate:"clock"`
	ClosingHours string  `json:"closingHours" validate:"clock"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Phone        string  `json:"phone"`
	Description  string  `json:"description"`
}

// Location returns the restaurant position as Coordinates.
func (r Restaurant) Location() Coordinates {
	return Coordinates{Lat: r.Latitude, Lon: r.Longitude}
}

// A catalog restaurant paired with its distance from a query origin.
// It is derived per query and never persisted.
type RankedRestaurant struct {
	Restaurant Restaurant
	DistanceKm float64
}
