package repositories

import (
	"context"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the FavoritesStore port. Each user's
// favorites live in a sorted set scored by a per-user insertion counter.
type RedisFavoritesStore struct {
	Client    *redis.Client
	KeyPrefix string
}

func NewRedisFavoritesStore(client *redis.Client) *RedisFavoritesStore {
	return &RedisFavoritesStore{Client: client, KeyPrefix: "favorites:"}
}

func (s *RedisFavoritesStore) key(userID string) string {
	return s.KeyPrefix + userID
}

func (s *RedisFavoritesStore) seqKey(userID string) string {
	return s.KeyPrefix + userID + ":seq"
}

func (s *RedisFavoritesStore) ListFavorites(ctx context.Context, userID string) (_ []string, err error) {
	defer obs.Time(ctx, "favorites.redis.List")(&err)

	if s.Client == nil {
		return nil, errors.New("favorites store: redis client is nil")
	}

	ids, err := s.Client.ZRange(ctx, s.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list favorites user=%q: %w", userID, err)
	}
	return ids, nil
}

func (s *RedisFavoritesStore) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.Client == nil {
		return errors.New("favorites store: redis client is nil")
	}
	if userID == "" || restaurantID == "" {
		return errors.New("add favorite: user id and restaurant id must be non-empty")
	}

	seq, err := s.Client.Incr(ctx, s.seqKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("add favorite user=%q: next seq: %w", userID, err)
	}

	// NX keeps the first score, so a repeated add does not move the entry.
	member := redis.Z{Score: float64(seq), Member: restaurantID}
	if err := s.Client.ZAddNX(ctx, s.key(userID), member).Err(); err != nil {
		return fmt.Errorf("add favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}

func (s *RedisFavoritesStore) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	if s.Client == nil {
		return errors.New("favorites store: redis client is nil")
	}

	if err := s.Client.ZRem(ctx, s.key(userID), restaurantID).Err(); err != nil {
		return fmt.Errorf("remove favorite user=%q restaurant=%q: %w", userID, restaurantID, err)
	}
	return nil
}
