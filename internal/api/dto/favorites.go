package dto

type FavoriteRequest struct {
	RestaurantID string `json:"restaurantId"`
}

type FavoritesResponse struct {
	Favorites   []string             `json:"favorites"`
	Restaurants []RestaurantResponse `json:"restaurants"`
	Count       int                  `json:"count"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
