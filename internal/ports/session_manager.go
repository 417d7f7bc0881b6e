package ports

import "time"

// Contract for issuing and verifying opaque session tokens bound to a user id.
type SessionManager interface {
	// Issue a token for userID and return it with its expiry.
	Issue(userID string) (token string, expiresAt time.Time, err error)
	// Verify a token and return the user id it was issued for.
	Verify(token string) (userID string, err error)
}
