package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/ports"
	"time"
)

const sessionCookieName = "session"

func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionUserID returns the user id bound to the request's session cookie,
// or domain.ErrUnauthenticated when there is no valid session.
func sessionUserID(r *http.Request, sessions ports.SessionManager) (string, error) {
	c, err := r.Cookie(sessionCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	return sessions.Verify(c.Value)
}
