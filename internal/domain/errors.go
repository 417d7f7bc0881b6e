package domain

import "errors"

var (
	// Neither an address nor a complete latitude/longitude pair was supplied.
	ErrMissingParameters = errors.New("address or latitude and longitude are required")
	// Latitude or longitude is unparsable or outside its valid range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidSignup      = errors.New("invalid signup")
	ErrUserNotFound       = errors.New("user not found")
)
