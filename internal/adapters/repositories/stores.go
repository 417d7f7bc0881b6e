package repositories

import (
	"database/sql"
	"restaurant-finder-service/internal/ports"
)

// NewSQLStores returns the user and favorites stores for conn, using the
// Postgres variants when postgres is set and the SQLite ones otherwise.
func NewSQLStores(conn *sql.DB, postgres bool) (ports.UserRepository, ports.FavoritesStore) {
	if postgres {
		return NewSQLUserRepository(conn), NewSQLFavoritesStore(conn)
	}
	return NewSqliteUserRepository(conn), NewSqliteFavoritesStore(conn)
}
