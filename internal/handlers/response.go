package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/middlewares"
	"github.com/sbilibin2017/student-diary/internal/models"
)

const (
	msgInvalidBody  = "invalid request body"
	msgInternal     = "Internal server error"
	msgUnauthorized = "Unauthorized"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a successful response without payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// writeFailure answers a failed service result with the status of its outcome.
func writeFailure(w http.ResponseWriter, res models.Result) {
	writeError(w, statusForOutcome(res.Outcome), res.Message)
}

func statusForOutcome(o models.Outcome) int {
	switch o {
	case models.OutcomeValidation:
		return http.StatusBadRequest
	case models.OutcomeConflict:
		return http.StatusConflict
	case models.OutcomeAuthentication:
		return http.StatusUnauthorized
	case models.OutcomeNotFound:
		return http.StatusNotFound
	case models.OutcomeOK:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// currentUserID answers 401 when the request did not pass AuthMiddleware.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
