package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/jwt"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Result, *models.UserProfile, error)
}

// SessionStarter opens a session for an authenticated user.
type SessionStarter interface {
	Start(ctx context.Context, userID uuid.UUID) (string, error)
}

// SessionTokener extracts the session token from a request.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionEnder ends the session behind a token.
type SessionEnder interface {
	End(ctx context.Context, token string) error
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful.
	Message string `json:"message"`

	// Session token, also set as the session_token cookie
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Profile of the logged in user
	User *models.UserProfile `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// The session cookie outlives the browser only when remember_me is set.
// @Summary User login
// @Description Authenticate user, open a session and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password / account locked"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessions SessionStarter, maxAge time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, profile, err := svc.Login(r.Context(), req)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			writeFailure(w, res)
			return
		}

		token, err := sessions.Start(r.Context(), profile.ID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		cookie := &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		if req.RememberMe {
			cookie.MaxAge = int(maxAge.Seconds())
			cookie.Expires = time.Now().Add(maxAge)
		}
		http.SetCookie(w, cookie)

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: res.Message,
			Token:   token,
			User:    profile,
		})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary User logout
// @Description Ends the current session and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(tokener SessionTokener, sessions SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		if err := sessions.End(r.Context(), token); err != nil {
			if errors.Is(err, services.ErrInvalidSession) {
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		clearSessionCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out."})
	}
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
