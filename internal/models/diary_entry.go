package models

import (
	"time"

	"github.com/google/uuid"
)

// DiaryEntryDB represents a diary entry row in the database
type DiaryEntryDB struct {
	ID               uuid.UUID `db:"id"`                 // Primary key
	UserID           uuid.UUID `db:"user_id"`            // Owner
	Title            string    `db:"title"`              // Up to 200 characters
	Content          string    `db:"content"`            // Free text
	CreatedDate      time.Time `db:"created_date"`       // Set once on insert
	LastModifiedDate time.Time `db:"last_modified_date"` // Never before CreatedDate
}

// Entry converts the row into its public representation.
func (e *DiaryEntryDB) Entry() *DiaryEntry {
	return &DiaryEntry{
		ID:               e.ID,
		UserID:           e.UserID,
		Title:            e.Title,
		Content:          e.Content,
		CreatedDate:      e.CreatedDate,
		LastModifiedDate: e.LastModifiedDate,
	}
}

// DiaryEntry is the diary entry exposed to the presentation layer
// swagger:model DiaryEntry
type DiaryEntry struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Title            string    `json:"title" example:"First day"`
	Content          string    `json:"content" example:"Today I started a diary."`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}

// CreateDiaryEntryRequest represents the JSON body for a new entry
// swagger:model CreateDiaryEntryRequest
type CreateDiaryEntryRequest struct {
	// Title
	// required: true
	// example: First day
	Title string `json:"title" validate:"required,notblank,max=200"`

	// Content
	// required: true
	// example: Today I started a diary.
	Content string `json:"content" validate:"required,notblank"`
}

// UpdateDiaryEntryRequest represents the JSON body for editing an entry.
// ID is taken from the URL by the handler.
// swagger:model UpdateDiaryEntryRequest
type UpdateDiaryEntryRequest struct {
	ID uuid.UUID `json:"-"`

	// Title
	// required: true
	// example: First day (edited)
	Title string `json:"title" validate:"required,notblank,max=200"`

	// Content
	// required: true
	// example: Today I started a diary and kept it.
	Content string `json:"content" validate:"required,notblank"`
}
