package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/student-diary/internal/models"
)

//go:generate mockgen -source=password_reset.go -destination=password_reset_mock.go -package=handlers

// PasswordForgetter issues password reset tokens.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.Result, error)
}

// PasswordResetter redeems password reset tokens.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.Result, error)
}

// NewForgotPasswordHandler returns an HTTP handler that requests a password reset.
// The answer is the same whether or not the email is registered.
// @Summary Request password reset
// @Description Sends a single-use reset token to the email of the account, if any
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body models.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} handlers.MessageResponse "Reset requested"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ForgotPasswordRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.ForgotPassword(r.Context(), req)
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

// NewResetPasswordHandler returns an HTTP handler that sets a new password using a reset token.
// @Summary Reset password
// @Description Sets a new password. The token is single use and clears any lockout.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body models.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, err := svc.ResetPassword(r.Context(), req)
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
