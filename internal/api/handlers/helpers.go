package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"

	"github.com/goccy/go-json"
)

// Upper bound for JSON request bodies.
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid json body")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeInternalError logs err and responds with a generic 500.
func writeInternalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// decodeJSON reads exactly one JSON object from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errInvalidBody
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func toRestaurantResponse(r domain.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		PriceRange:   r.PriceRange,
		OpeningHours: r.OpeningHours,
		ClosingHours: r.ClosingHours,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Phone:        r.Phone,
		Description:  r.Description,
	}
}

func toUserResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
