package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	validReq := models.RegisterRequest{
		Username:        "john",
		Email:           "john@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), validReq).
					Return(models.Succeeded(services.MsgRegistered), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &MessageResponse{Message: services.MsgRegistered},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "validation failure",
			inputBody: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), validReq).
					Return(models.Failed(models.OutcomeValidation, services.MsgPasswordMismatch), nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: services.MsgPasswordMismatch},
		},
		{
			name:      "username taken",
			inputBody: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), validReq).
					Return(models.Failed(models.OutcomeConflict, services.MsgUsernameTaken), nil)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &ErrorResponse{Error: services.MsgUsernameTaken},
		},
		{
			name:      "internal error",
			inputBody: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), validReq).
					Return(models.Result{}, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &MessageResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
