package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "CATALOG_SOURCE", "CATALOG_PATH", "DATABASE_URL", "DB_PATH",
		"FAVORITES_BACKEND", "REDIS_DB", "SESSION_TTL", "SECURE_COOKIES",
	} {
		t.Setenv(k, "")
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != "8080" {
		t.Errorf("Port = %q, want 8080", c.Port)
	}
	if c.CatalogSource != CatalogSourceFile || c.CatalogPath != "data/restaurants.json" {
		t.Errorf("catalog = %q %q", c.CatalogSource, c.CatalogPath)
	}
	if c.FavoritesBackend != FavoritesBackendSQL {
		t.Errorf("FavoritesBackend = %q", c.FavoritesBackend)
	}
	if c.SessionTTL != 168*time.Hour {
		t.Errorf("SessionTTL = %v", c.SessionTTL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CATALOG_SOURCE", "s3"},
		{"FAVORITES_BACKEND", "files"},
		{"REDIS_DB", "-1"},
		{"REDIS_DB", "one"},
		{"SESSION_TTL", "forever"},
		{"SECURE_COOKIES", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("SOME_KEY", "")
	if got := Get("SOME_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}
	t.Setenv("SOME_KEY", "value")
	if got := Get("SOME_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}
}
