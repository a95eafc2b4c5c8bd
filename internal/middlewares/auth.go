package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener extracts the session token from a request
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionResolver maps a session token to its user
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthMiddleware returns a middleware that lets through only requests with a live session.
// The resolved user id is stored in the request context.
func AuthMiddleware(tokener Tokener, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := sessions.Resolve(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrInvalidSession) {
					logger.Log.Infow("authorization failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				logger.Log.Errorw("failed to resolve session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(ctx, userID)))
		})
	}
}

type userIDKey struct{}

// ContextWithUserID stores the authenticated user id in ctx
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
