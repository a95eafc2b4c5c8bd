package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/jwt"
	"github.com/sbilibin2017/student-diary/internal/repositories"
	"github.com/sbilibin2017/student-diary/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idle = 30 * time.Minute

func TestSessionService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockSessionStore(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)
	svc := services.NewSessionService(mockStore, mockTokens, idle)
	userID := uuid.New()

	var savedSession uuid.UUID
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any(), userID, idle).
		DoAndReturn(func(_ context.Context, sessionID, _ uuid.UUID, _ time.Duration) error {
			savedSession = sessionID
			return nil
		})
	mockTokens.EXPECT().Generate(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, sessionID uuid.UUID) (string, error) {
			assert.Equal(t, savedSession, sessionID)
			return "TOKEN", nil
		})

	token, err := svc.Start(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "TOKEN", token)
	assert.NotEqual(t, uuid.Nil, savedSession)

	mockStore.EXPECT().Save(gomock.Any(), gomock.Any(), userID, idle).Return(errors.New("redis down"))
	token, err = svc.Start(context.Background(), userID)
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestSessionService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockSessionStore(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)
	svc := services.NewSessionService(mockStore, mockTokens, idle)

	userID, sessionID := uuid.New(), uuid.New()
	claims := &jwt.Claims{UserID: userID, SessionID: sessionID}

	tests := []struct {
		name    string
		setup   func()
		wantID  uuid.UUID
		wantErr error
	}{
		{
			name: "live session is extended",
			setup: func() {
				mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				mockStore.EXPECT().GetUserID(gomock.Any(), sessionID).Return(userID, nil)
				mockStore.EXPECT().Touch(gomock.Any(), sessionID, idle).Return(nil)
			},
			wantID: userID,
		},
		{
			name: "bad token",
			setup: func() {
				mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, errors.New("token is expired"))
			},
			wantErr: services.ErrInvalidSession,
		},
		{
			name: "session ended or idle",
			setup: func() {
				mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				mockStore.EXPECT().GetUserID(gomock.Any(), sessionID).Return(uuid.Nil, repositories.ErrSessionNotFound)
			},
			wantErr: services.ErrInvalidSession,
		},
		{
			name: "session belongs to another user",
			setup: func() {
				mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				mockStore.EXPECT().GetUserID(gomock.Any(), sessionID).Return(uuid.New(), nil)
			},
			wantErr: services.ErrInvalidSession,
		},
		{
			name: "expired between read and touch",
			setup: func() {
				mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				mockStore.EXPECT().GetUserID(gomock.Any(), sessionID).Return(userID, nil)
				mockStore.EXPECT().Touch(gomock.Any(), sessionID, idle).Return(repositories.ErrSessionNotFound)
			},
			wantErr: services.ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			got, err := svc.Resolve(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, got)
		})
	}

	t.Run("store failure is not masked", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
		mockStore.EXPECT().GetUserID(gomock.Any(), sessionID).Return(uuid.Nil, errors.New("redis down"))

		_, err := svc.Resolve(context.Background(), "tok")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrInvalidSession)
	})
}

func TestSessionService_End(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockSessionStore(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)
	svc := services.NewSessionService(mockStore, mockTokens, idle)
	sessionID := uuid.New()

	mockTokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: uuid.New(), SessionID: sessionID}, nil)
	mockStore.EXPECT().Delete(gomock.Any(), sessionID).Return(nil)
	assert.NoError(t, svc.End(context.Background(), "tok"))

	mockTokens.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, errors.New("malformed"))
	assert.ErrorIs(t, svc.End(context.Background(), "bad"), services.ErrInvalidSession)
}

func TestSessionService_RealTokensStopResolvingAfterLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockSessionStore(ctrl)
	tokens := jwt.New(jwt.WithSecretKey("secret"), jwt.WithExpiration(time.Hour))
	svc := services.NewSessionService(mockStore, tokens, idle)
	userID := uuid.New()

	var sessionID uuid.UUID
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any(), userID, idle).
		DoAndReturn(func(_ context.Context, sid, _ uuid.UUID, _ time.Duration) error {
			sessionID = sid
			return nil
		})
	token, err := svc.Start(context.Background(), userID)
	require.NoError(t, err)

	mockStore.EXPECT().GetUserID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sid uuid.UUID) (uuid.UUID, error) {
			assert.Equal(t, sessionID, sid)
			return userID, nil
		})
	mockStore.EXPECT().Touch(gomock.Any(), gomock.Any(), idle).Return(nil)
	got, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	mockStore.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.End(context.Background(), token))

	mockStore.EXPECT().GetUserID(gomock.Any(), gomock.Any()).Return(uuid.Nil, repositories.ErrSessionNotFound)
	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, services.ErrInvalidSession)
}
