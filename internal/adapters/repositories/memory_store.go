package repositories

import (
	"context"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"slices"
	"sync"
)

// In-memory FavoritesStore. Safe for concurrent use.
type MemoryFavoritesStore struct {
	mu  sync.RWMutex
	ids map[string][]string
}

func NewMemoryFavoritesStore() *MemoryFavoritesStore {
	return &MemoryFavoritesStore{ids: map[string][]string{}}
}

func (s *MemoryFavoritesStore) ListFavorites(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.ids[userID])
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func (s *MemoryFavoritesStore) AddFavorite(_ context.Context, userID, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.ids[userID], restaurantID) {
		s.ids[userID] = append(s.ids[userID], restaurantID)
	}
	return nil
}

func (s *MemoryFavoritesStore) RemoveFavorite(_ context.Context, userID, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[userID] = slices.DeleteFunc(s.ids[userID], func(id string) bool { return id == restaurantID })
	return nil
}

// In-memory UserRepository keyed by id, with an email index.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byID: map[string]domain.User{}, byEmail: map[string]string{}}
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return fmt.Errorf("create user email=%q: %w", user.Email, domain.ErrEmailTaken)
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *MemoryUserRepository) FindUserByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, fmt.Errorf("find user email=%q: %w", email, domain.ErrUserNotFound)
	}
	return r.byID[id], nil
}

func (r *MemoryUserRepository) FindUserByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, fmt.Errorf("find user id=%q: %w", id, domain.ErrUserNotFound)
	}
	return u, nil
}
