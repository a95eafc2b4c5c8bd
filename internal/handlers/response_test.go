package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/middlewares"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/stretchr/testify/assert"
)

// withUser marks req as authenticated for userID.
func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middlewares.ContextWithUserID(req.Context(), userID))
}

// withURLParam sets a chi path parameter on req.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestStatusForOutcome(t *testing.T) {
	tests := []struct {
		outcome models.Outcome
		want    int
	}{
		{models.OutcomeOK, http.StatusOK},
		{models.OutcomeValidation, http.StatusBadRequest},
		{models.OutcomeConflict, http.StatusConflict},
		{models.OutcomeAuthentication, http.StatusUnauthorized},
		{models.OutcomeNotFound, http.StatusNotFound},
		{models.Outcome("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForOutcome(tt.outcome))
		})
	}
}

func TestCurrentUserID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()

	_, ok := currentUserID(w, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}
