package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter loads the profile of a user.
type ProfileGetter interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// ProfileUpdater edits names and email of a user.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (models.Result, error)
}

// AccountDeleter removes a user with all of their entries.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) (models.Result, error)
}

// NewGetProfileHandler returns an HTTP handler for the current user's profile.
// @Summary Get profile
// @Description Returns the profile of the logged in user
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetUserProfile(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if profile == nil {
			writeError(w, http.StatusNotFound, services.MsgUserNotFound)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that edits the current user's profile.
// @Summary Update profile
// @Description Changes first name, last name and, when given, email
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body models.UpdateProfileRequest true "Profile update"
// @Success 200 {object} handlers.MessageResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req models.UpdateProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.UpdateProfile(r.Context(), userID, req)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			writeFailure(w, res)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: res.Message})
	}
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the current user.
// The session is ended and the cookie cleared on success.
// @Summary Delete account
// @Description Deletes the logged in user together with all diary entries
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter, tokener SessionTokener, sessions SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		res, err := svc.DeleteAccount(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			writeFailure(w, res)
			return
		}

		if token, err := tokener.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := sessions.End(r.Context(), token); err != nil {
				logger.Log.Warnw("failed to end session of deleted account", "user_id", userID, "err", err)
			}
		}
		clearSessionCookie(w)

		writeJSON(w, http.StatusOK, MessageResponse{Message: res.Message})
	}
}
