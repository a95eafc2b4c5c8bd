package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
)

//go:generate mockgen -source=entry.go -destination=entry_mock.go -package=handlers

const msgInvalidEntryID = "invalid entry id"

// EntryLister lists the entries of a user.
type EntryLister interface {
	GetUserEntries(ctx context.Context, userID uuid.UUID) ([]models.DiaryEntry, error)
}

// EntryGetter loads one entry owned by a user.
type EntryGetter interface {
	GetEntryByID(ctx context.Context, entryID, userID uuid.UUID) (*models.DiaryEntry, error)
}

// EntryCreator stores a new entry.
type EntryCreator interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req models.CreateDiaryEntryRequest) (models.Result, *models.DiaryEntry, error)
}

// EntryUpdater rewrites an entry owned by a user.
type EntryUpdater interface {
	UpdateEntry(ctx context.Context, userID uuid.UUID, req models.UpdateDiaryEntryRequest) (models.Result, *models.DiaryEntry, error)
}

// EntryDeleter removes an entry owned by a user.
type EntryDeleter interface {
	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) (models.Result, error)
}

// EntriesResponse represents the diary of the current user
// swagger:model EntriesResponse
type EntriesResponse struct {
	// Entries, most recently modified first
	Entries []models.DiaryEntry `json:"entries"`
}

// EntryResponse represents a created or updated entry
// swagger:model EntryResponse
type EntryResponse struct {
	// Success message
	Message string `json:"message"`

	// Stored entry
	Entry *models.DiaryEntry `json:"entry"`
}

// entryIDFromURL answers 400 when the {id} path segment is not a UUID.
func entryIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidEntryID)
		return uuid.Nil, false
	}
	return id, true
}

// NewListEntriesHandler returns an HTTP handler listing the current user's entries.
// @Summary List diary entries
// @Description Returns all entries of the logged in user, most recently modified first
// @Tags entries
// @Produce json
// @Success 200 {object} handlers.EntriesResponse "Entries"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries [get]
// @Security BearerAuth
func NewListEntriesHandler(svc EntryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		entries, err := svc.GetUserEntries(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if entries == nil {
			entries = []models.DiaryEntry{}
		}

		writeJSON(w, http.StatusOK, EntriesResponse{Entries: entries})
	}
}

// NewGetEntryHandler returns an HTTP handler for one entry of the current user.
// @Summary Get diary entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} models.DiaryEntry "Entry"
// @Failure 400 {object} handlers.ErrorResponse "Invalid entry id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/{id} [get]
// @Security BearerAuth
func NewGetEntryHandler(svc EntryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		entryID, ok := entryIDFromURL(w, r)
		if !ok {
			return
		}

		entry, err := svc.GetEntryByID(r.Context(), entryID, userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if entry == nil {
			writeError(w, http.StatusNotFound, services.MsgEntryNotFound)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// NewCreateEntryHandler returns an HTTP handler that adds an entry to the current user's diary.
// @Summary Create diary entry
// @Tags entries
// @Accept json
// @Produce json
// @Param createDiaryEntryRequest body models.CreateDiaryEntryRequest true "New entry"
// @Success 201 {object} handlers.EntryResponse "Entry created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries [post]
// @Security BearerAuth
func NewCreateEntryHandler(svc EntryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req models.CreateDiaryEntryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		res, entry, err := svc.CreateEntry(r.Context(), userID, req)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			writeFailure(w, res)
			return
		}

		writeJSON(w, http.StatusCreated, EntryResponse{Message: res.Message, Entry: entry})
	}
}

// NewUpdateEntryHandler returns an HTTP handler that edits an entry of the current user.
// @Summary Update diary entry
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param updateDiaryEntryRequest body models.UpdateDiaryEntryRequest true "Entry changes"
// @Success 200 {object} handlers.EntryResponse "Entry updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/{id} [put]
// @Security BearerAuth
func NewUpdateEntryHandler(svc EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		entryID, ok := entryIDFromURL(w, r)
		if !ok {
			return
		}

		var req models.UpdateDiaryEntryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		req.ID = entryID

		res, entry, err := svc.UpdateEntry(r.Context(), userID, req)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			writeFailure(w, res)
			return
		}

		writeJSON(w, http.StatusOK, EntryResponse{Message: res.Message, Entry: entry})
	}
}

// NewDeleteEntryHandler returns an HTTP handler that removes an entry of the current user.
// @Summary Delete diary entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} handlers.MessageResponse "Entry deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid entry id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/{id} [delete]
// @Security BearerAuth
func NewDeleteEntryHandler(svc EntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		entryID, ok := entryIDFromURL(w, r)
		if !ok {
			return
		}

		res, err := svc.DeleteEntry(r.Context(), entryID, userID)
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
