package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"restaurant-finder-service/internal/adapters/catalog"
	"restaurant-finder-service/internal/adapters/geocode"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/adapters/session"
	"restaurant-finder-service/internal/api"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/platform/db"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Catalog loaded source=%s restaurants=%d", cfg.CatalogSource, cat.Len())

	conn, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Schema creation is idempotent, so local runs need no separate dbtool step.
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

	users, favorites := repositories.NewSQLStores(conn, cfg.DatabaseURL != "")
	if cfg.FavoritesBackend == config.FavoritesBackendRedis {
		client, err := openRedis(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		favorites = repositories.NewRedisFavoritesStore(client)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		// Sessions will not survive a restart.
		secret = uuid.NewString()
		log.Println("SESSION_SECRET not set; using a random per-process secret")
	}
	sessions, err := session.NewJWTSessionManager(secret, cfg.SessionTTL)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.Deps{
		Geocoder:      geocode.NewKeywordGeocoder(),
		Catalog:       cat,
		Favorites:     favorites,
		Users:         users,
		Sessions:      sessions,
		SecureCookies: cfg.SecureCookies,
	})

	log.Printf("Server listening addr=:%s favorites_backend=%s", cfg.Port, cfg.FavoritesBackend)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.StaticCatalog, error) {
	if cfg.CatalogSource != config.CatalogSourceElastic {
		return catalog.LoadJSONCatalog(cfg.CatalogPath)
	}

	client, err := catalog.NewElasticClient(cfg.ElasticURL, cfg.ElasticUser, cfg.ElasticPassword)
	if err != nil {
		return nil, err
	}
	return catalog.LoadElasticCatalog(ctx, client, cfg.ElasticIndex)
}

// openDB connects to Postgres when DATABASE_URL is set, otherwise to the
// SQLite file at DB_PATH.
func openDB(cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL != "" {
		return db.Open(cfg.DatabaseURL)
	}
	return db.OpenSQLite(cfg.DBPath)
}

func openRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
