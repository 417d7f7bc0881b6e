package main

import (
	"context"
	"os"
	"path/filepath"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestImportLegacyUsers(t *testing.T) {
	services.PasswordHashCost = bcrypt.MinCost
	ctx := context.Background()
	dir := t.TempDir()

	path := writeFile(t, dir, "users.json", `[
		{"id":"user_1","email":"Ada@Example.com","password":"secret1","name":"Ada","createdAt":"2024-01-02T03:04:05.000Z"},
		{"id":"user_2","email":"ada@example.com","password":"other","name":"Dup","createdAt":"2024-01-03T00:00:00.000Z"}
	]`)

	users := repositories.NewMemoryUserRepository()
	var stats importStats
	require.NoError(t, importLegacyUsers(ctx, path, users, &stats))

	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.Skipped)

	u, err := users.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", u.ID)
	assert.Equal(t, 2024, u.CreatedAt.Year())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))

	// Imported accounts can log in with their old password.
	_, err = services.Login(ctx, "ada@example.com", "secret1", users)
	require.NoError(t, err)
}

func TestImportLegacyUsersRejectsIncompleteRecord(t *testing.T) {
	path := writeFile(t, t.TempDir(), "users.json", `[{"id":"","email":"a@example.com","password":"x"}]`)

	var stats importStats
	require.Error(t, importLegacyUsers(context.Background(), path, repositories.NewMemoryUserRepository(), &stats))
}

func TestImportLegacyFavorites(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, t.TempDir(), "favorites.json", `{"user_1":["3","1","3"],"user_2":["2"]}`)

	store := repositories.NewMemoryFavoritesStore()
	var stats importStats
	require.NoError(t, importLegacyFavorites(ctx, path, store, &stats))
	assert.Equal(t, 4, stats.Favorites)

	ids, err := store.ListFavorites(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids)
}

func TestImportLegacyMissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	var stats importStats

	require.NoError(t, importLegacyUsers(context.Background(), filepath.Join(dir, "users.json"), repositories.NewMemoryUserRepository(), &stats))
	require.NoError(t, importLegacyFavorites(context.Background(), filepath.Join(dir, "favorites.json"), repositories.NewMemoryFavoritesStore(), &stats))
	assert.Equal(t, importStats{}, stats)
}
