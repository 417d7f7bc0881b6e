package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogSourceFile    = "file"
	CatalogSourceElastic = "elastic"

	FavoritesBackendSQL   = "sql"
	FavoritesBackendRedis = "redis"
)

// Runtime settings for the server, read from the environment.
type Config struct {
	Port string

	CatalogSource   string
	CatalogPath     string
	ElasticURL      string
	ElasticUser     string
	ElasticPassword string
	ElasticIndex    string

	// DatabaseURL selects Postgres when set; otherwise DBPath (SQLite) is used.
	DatabaseURL string
	DBPath      string

	FavoritesBackend string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int

	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads Config from the environment and validates enumerated and
// numeric settings.
func Load() (Config, error) {
	c := Config{
		Port:             Get("PORT", "8080"),
		CatalogSource:    strings.ToLower(Get("CATALOG_SOURCE", CatalogSourceFile)),
		CatalogPath:      Get("CATALOG_PATH", "data/restaurants.json"),
		ElasticURL:       Get("ELASTIC_URL", "http://localhost:9200"),
		ElasticUser:      Get("ELASTIC_USER", "elastic"),
		ElasticPassword:  os.Getenv("ELASTIC_PASSWORD"),
		ElasticIndex:     Get("ELASTIC_INDEX", "restaurants"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:           Get("DB_PATH", "data/app.db"),
		FavoritesBackend: strings.ToLower(Get("FAVORITES_BACKEND", FavoritesBackendSQL)),
		RedisAddr:        Get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
	}

	switch c.CatalogSource {
	case CatalogSourceFile, CatalogSourceElastic:
	default:
		return Config{}, fmt.Errorf("load config: CATALOG_SOURCE must be %q or %q, got %q",
			CatalogSourceFile, CatalogSourceElastic, c.CatalogSource)
	}

	switch c.FavoritesBackend {
	case FavoritesBackendSQL, FavoritesBackendRedis:
	default:
		return Config{}, fmt.Errorf("load config: FAVORITES_BACKEND must be %q or %q, got %q",
			FavoritesBackendSQL, FavoritesBackendRedis, c.FavoritesBackend)
	}

	redisDB, err := strconv.Atoi(Get("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return Config{}, fmt.Errorf("load config: REDIS_DB must be a non-negative integer, got %q", os.Getenv("REDIS_DB"))
	}
	c.RedisDB = redisDB

	ttl, err := time.ParseDuration(Get("SESSION_TTL", "168h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("load config: SESSION_TTL must be a positive duration, got %q", os.Getenv("SESSION_TTL"))
	}
	c.SessionTTL = ttl

	secure, err := strconv.ParseBool(Get("SECURE_COOKIES", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: SECURE_COOKIES: %w", err)
	}
	c.SecureCookies = secure

	return c, nil
}
