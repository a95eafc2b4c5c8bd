package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/jwt"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/repositories"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

// ErrInvalidSession is returned for unknown, expired or forged session tokens.
var ErrInvalidSession = errors.New("invalid or expired session")

// SessionStore keeps live sessions with an idle timeout.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error
	GetUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
	Touch(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// TokenIssuer signs and parses session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID, sessionID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionManager issues, resolves and ends login sessions.
type SessionManager interface {
	Start(ctx context.Context, userID uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	End(ctx context.Context, token string) error
}

var _ SessionManager = (*SessionService)(nil)

// SessionService ties a signed token to a server-side session entry.
// The token bounds the absolute lifetime, the store entry the idle time.
type SessionService struct {
	store       SessionStore
	tokens      TokenIssuer
	idleTimeout time.Duration
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(store SessionStore, tokens TokenIssuer, idleTimeout time.Duration) *SessionService {
	return &SessionService{
		store:       store,
		tokens:      tokens,
		idleTimeout: idleTimeout,
	}
}

// Start opens a session for userID and returns its token.
func (svc *SessionService) Start(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.New()

	if err := svc.store.Save(ctx, sessionID, userID, svc.idleTimeout); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", userID, "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, userID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Resolve returns the user of a live session and extends its idle timeout.
func (svc *SessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("rejected session token", "err", err)
		return uuid.Nil, ErrInvalidSession
	}

	userID, err := svc.store.GetUserID(ctx, claims.SessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return uuid.Nil, ErrInvalidSession
	}
	if err != nil {
		logger.Log.Errorw("failed to load session", "session_id", claims.SessionID, "err", err)
		return uuid.Nil, err
	}
	if userID != claims.UserID {
		logger.Log.Warnw("session owner mismatch", "session_id", claims.SessionID, "token_user_id", claims.UserID)
		return uuid.Nil, ErrInvalidSession
	}

	err = svc.store.Touch(ctx, claims.SessionID, svc.idleTimeout)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return uuid.Nil, ErrInvalidSession
	}
	if err != nil {
		logger.Log.Errorw("failed to refresh session", "session_id", claims.SessionID, "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// End deletes the session behind token.
func (svc *SessionService) End(ctx context.Context, token string) error {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return ErrInvalidSession
	}

	if err := svc.store.Delete(ctx, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", claims.SessionID, "err", err)
		return err
	}
	return nil
}
