package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(userID uuid.UUID) *models.DiaryEntry {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.DiaryEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            "First day",
		Content:          "Today I started a diary.",
		CreatedDate:      now,
		LastModifiedDate: now,
	}
}

func TestListEntriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEntryLister(ctrl)
	userID := uuid.New()
	entry := sampleEntry(userID)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetUserEntries(gomock.Any(), userID).Return([]models.DiaryEntry{*entry}, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/entries", nil), userID)
		w := httptest.NewRecorder()
		NewListEntriesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got EntriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Entries, 1)
		assert.Equal(t, entry.ID, got.Entries[0].ID)
	})

	t.Run("empty diary is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().GetUserEntries(gomock.Any(), userID).Return(nil, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/entries", nil), userID)
		w := httptest.NewRecorder()
		NewListEntriesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().GetUserEntries(gomock.Any(), userID).Return(nil, errors.New("database error"))

		req := withUser(httptest.NewRequest(http.MethodGet, "/entries", nil), userID)
		w := httptest.NewRecorder()
		NewListEntriesHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEntryGetter(ctrl)
	userID := uuid.New()
	entry := sampleEntry(userID)

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().GetEntryByID(gomock.Any(), entry.ID, userID).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing or foreign entry",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().GetEntryByID(gomock.Any(), entry.ID, userID).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			id:           "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().GetEntryByID(gomock.Any(), entry.ID, userID).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/entries/"+tt.id, nil)
			req = withURLParam(withUser(req, userID), "id", tt.id)
			w := httptest.NewRecorder()

			NewGetEntryHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got models.DiaryEntry
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, entry.Title, got.Title)
			}
			if tt.expectedCode == http.StatusNotFound {
				assert.JSONEq(t, `{"error":"`+services.MsgEntryNotFound+`"}`, w.Body.String())
			}
		})
	}
}

func TestCreateEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEntryCreator(ctrl)
	userID := uuid.New()
	entry := sampleEntry(userID)
	createReq := models.CreateDiaryEntryRequest{Title: entry.Title, Content: entry.Content}
	body := `{"title":"First day","content":"Today I started a diary."}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().CreateEntry(gomock.Any(), userID, createReq).
					Return(models.Succeeded(services.MsgEntryCreated), entry, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			body:         `{"title":`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().CreateEntry(gomock.Any(), userID, createReq).
					Return(models.Failed(models.OutcomeValidation, "title is required"), nil, nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: body,
			mockSetup: func() {
				mockSvc.EXPECT().CreateEntry(gomock.Any(), userID, createReq).
					Return(models.Result{}, nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withUser(httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(tt.body)), userID)
			w := httptest.NewRecorder()

			NewCreateEntryHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var got EntryResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, services.MsgEntryCreated, got.Message)
				require.NotNil(t, got.Entry)
				assert.Equal(t, entry.ID, got.Entry.ID)
			}
		})
	}
}

func TestUpdateEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEntryUpdater(ctrl)
	userID := uuid.New()
	entry := sampleEntry(userID)
	updateReq := models.UpdateDiaryEntryRequest{ID: entry.ID, Title: "Edited", Content: "More text."}
	body := `{"title":"Edited","content":"More text."}`

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().UpdateEntry(gomock.Any(), userID, updateReq).
					Return(models.Succeeded(services.MsgEntryUpdated), entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not owned",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().UpdateEntry(gomock.Any(), userID, updateReq).
					Return(models.Failed(models.OutcomeNotFound, services.MsgEntryNotFound), nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			id:           "42",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			id:   entry.ID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().UpdateEntry(gomock.Any(), userID, updateReq).
					Return(models.Result{}, nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/entries/"+tt.id, strings.NewReader(body))
			req = withURLParam(withUser(req, userID), "id", tt.id)
			w := httptest.NewRecorder()

			NewUpdateEntryHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEntryDeleter(ctrl)
	userID := uuid.New()
	entryID := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			id:   entryID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).
					Return(models.Succeeded(services.MsgEntryDeleted), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"` + services.MsgEntryDeleted + `"}`,
		},
		{
			name: "not found",
			id:   entryID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).
					Return(models.Failed(models.OutcomeNotFound, services.MsgEntryNotFound), nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"` + services.MsgEntryNotFound + `"}`,
		},
		{
			name:         "invalid id",
			id:           "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid entry id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/entries/"+tt.id, nil)
			req = withURLParam(withUser(req, userID), "id", tt.id)
			w := httptest.NewRecorder()

			NewDeleteEntryHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
