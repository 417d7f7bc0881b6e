package domain

import "time"

// Represents a registered account. Email is stored lower-cased so lookups
// are case-insensitive.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
