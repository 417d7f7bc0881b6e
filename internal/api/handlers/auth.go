package handlers

import (
	"errors"
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
)

// AuthHandler serves account signup, login and the cookie session.
type AuthHandler struct {
	Users         ports.UserRepository
	Sessions      ports.SessionManager
	SecureCookies bool
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := services.Signup(r.Context(), services.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}, h.Users)
	switch {
	case errors.Is(err, domain.ErrInvalidSignup):
		writeError(w, r, http.StatusBadRequest, "email, password (min 6 characters) and name are required")
		return
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, domain.ErrEmailTaken.Error())
		return
	case err != nil:
		writeInternalError(w, r, "signup", err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.AuthResponse{Success: true, User: toUserResponse(user)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := services.Login(r.Context(), req.Email, req.Password, h.Users)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		writeError(w, r, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		writeInternalError(w, r, "login", err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: true, User: toUserResponse(user)})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	clearSessionCookie(w, h.SecureCookies)
	writeJSON(w, r, http.StatusOK, dto.MutationResponse{Success: true, Message: "Logged out"})
}

// Session reports the signed-in user. A stale or forged cookie is cleared
// and reported as signed out rather than as an error.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	_, cookieErr := r.Cookie(sessionCookieName)
	signedOut := func() {
		if cookieErr == nil {
			clearSessionCookie(w, h.SecureCookies)
		}
		writeJSON(w, r, http.StatusOK, dto.SessionResponse{Authenticated: false})
	}

	userID, err := sessionUserID(r, h.Sessions)
	if err != nil {
		signedOut()
		return
	}

	user, err := h.Users.FindUserByID(r.Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		signedOut()
		return
	}
	if err != nil {
		writeInternalError(w, r, "session lookup", err)
		return
	}

	u := toUserResponse(user)
	writeJSON(w, r, http.StatusOK, dto.SessionResponse{Authenticated: true, User: &u})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID string) bool {
	token, expiresAt, err := h.Sessions.Issue(userID)
	if err != nil {
		writeInternalError(w, r, "issue session", err)
		return false
	}
	setSessionCookie(w, token, expiresAt, h.SecureCookies)
	return true
}
