package session

import (
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"time"

	"github.com/golang-jwt/jwt"
)

// JWTSessionManager issues HS256-signed tokens carrying the user id as subject.
type JWTSessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTSessionManager(secret string, ttl time.Duration) (*JWTSessionManager, error) {
	if secret == "" {
		return nil, errors.New("jwt session manager: secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt session manager: ttl must be positive, got %s", ttl)
	}
	return &JWTSessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *JWTSessionManager) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("issue session: user id is empty")
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := jwt.StandardClaims{
		Subject:   userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify fails with domain.ErrUnauthenticated for any malformed, forged or
// expired token.
func (m *JWTSessionManager) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}

	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("verify session: %w: %v", domain.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("verify session: %w", domain.ErrUnauthenticated)
	}

	return claims.Subject, nil
}
