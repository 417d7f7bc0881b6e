package main

import (
	"context"
	"database/sql"
	"log"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/platform/db"
	"restaurant-finder-service/internal/ports"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// dbtool initializes the schema and imports the legacy flat files.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg.DatabaseURL)
	} else {
		conn, err = db.OpenSQLite(cfg.DBPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	users, favorites := repositories.NewSQLStores(conn, cfg.DatabaseURL != "")
	if cfg.FavoritesBackend == config.FavoritesBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		favorites = repositories.NewRedisFavoritesStore(client)
	}

	if err := importLegacy(ctx, users, favorites); err != nil {
		log.Fatal(err)
	}
}

func importLegacy(ctx context.Context, users ports.UserRepository, favorites ports.FavoritesStore) error {
	usersPath := config.Get("LEGACY_USERS_PATH", "data/users.json")
	favoritesPath := config.Get("LEGACY_FAVORITES_PATH", "data/favorites.json")

	var stats importStats

	log.Println("Importing legacy users...")
	if err := importLegacyUsers(ctx, usersPath, users, &stats); err != nil {
		return err
	}

	log.Println("Importing legacy favorites...")
	if err := importLegacyFavorites(ctx, favoritesPath, favorites, &stats); err != nil {
		return err
	}

	log.Printf("Import complete. users=%d skipped=%d favorites=%d", stats.Users, stats.Skipped, stats.Favorites)
	return nil
}
