package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Account record of the legacy users.json file. Passwords were stored in
// plain text there and are hashed on import.
type legacyUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type importStats struct {
	Users     int
	Skipped   int
	Favorites int
}

// importLegacyUsers loads users.json. Users whose email is already registered
// are skipped so the import can be re-run.
func importLegacyUsers(ctx context.Context, path string, users ports.UserRepository, stats *importStats) error {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("legacy users file not found path=%s (skipping)", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("import users: read %q: %w", path, err)
	}

	var data []legacyUser
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("import users: parse json: %w", err)
	}

	for i, lu := range data {
		id := strings.TrimSpace(lu.ID)
		email := services.NormalizeEmail(lu.Email)
		if id == "" || email == "" || lu.Password == "" {
			return fmt.Errorf("import users: record #%d: id, email and password are required", i+1)
		}

		hash, err := services.HashPassword(lu.Password)
		if err != nil {
			return fmt.Errorf("import users: record #%d: %w", i+1, err)
		}

		createdAt, err := time.Parse(time.RFC3339Nano, lu.CreatedAt)
		if err != nil {
			createdAt = time.Now().UTC()
		}

		err = users.CreateUser(ctx, domain.User{
			ID:           id,
			Email:        email,
			Name:         strings.TrimSpace(lu.Name),
			PasswordHash: hash,
			CreatedAt:    createdAt.UTC(),
		})
		if errors.Is(err, domain.ErrEmailTaken) {
			stats.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("import users: record #%d: %w", i+1, err)
		}
		stats.Users++
	}

	return nil
}

// importLegacyFavorites loads favorites.json, a map of user id to restaurant
// ids in the order they were added.
func importLegacyFavorites(ctx context.Context, path string, store ports.FavoritesStore, stats *importStats) error {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("legacy favorites file not found path=%s (skipping)", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("import favorites: read %q: %w", path, err)
	}

	var data map[string][]string
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("import favorites: parse json: %w", err)
	}

	userIDs := make([]string, 0, len(data))
	for id := range data {
		userIDs = append(userIDs, id)
	}
	slices.Sort(userIDs)

	for _, userID := range userIDs {
		for _, restaurantID := range data[userID] {
			if err := store.AddFavorite(ctx, userID, restaurantID); err != nil {
				return fmt.Errorf("import favorites: user=%q: %w", userID, err)
			}
			stats.Favorites++
		}
	}

	return nil
}
