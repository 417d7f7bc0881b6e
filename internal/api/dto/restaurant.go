package dto

type RestaurantResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	PriceRange   string  `json:"priceRange"`
	OpeningHours string  `json:"openingHours"`
	ClosingHours string  `json:"closingHours"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Phone        string  `json:"phone"`
	Description  string  `json:"description"`
}

// A restaurant in search results. Distance is the display string for DistanceKm.
type RankedRestaurantResponse struct {
	RestaurantResponse
	DistanceKm float64 `json:"distanceKm"`
	Distance   string  `json:"distance"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchRestaurantsResponse struct {
	Restaurants []RankedRestaurantResponse `json:"restaurants"`
	Count       int                        `json:"count"`
	Location    LocationResponse           `json:"location"`
}
