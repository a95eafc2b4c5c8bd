package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                       uuid.UUID  `db:"id"`                          // Primary key
	Username                 string     `db:"username"`                    // Unique, case-sensitive
	Email                    string     `db:"email"`                       // Unique, stored lower case
	PasswordHash             string     `db:"password_hash"`               // PHC encoded hash
	FirstName                string     `db:"first_name"`                  // Optional display name
	LastName                 string     `db:"last_name"`                   // Optional display name
	ProfilePicturePath       string     `db:"profile_picture_path"`        // Object key of the picture, empty if none
	DateCreated              time.Time  `db:"date_created"`                // Set once on insert
	LastLoginDate            *time.Time `db:"last_login_date"`             // Nil until the first successful login
	FailedLoginAttempts      int        `db:"failed_login_attempts"`       // Consecutive failed logins
	LockoutEnd               *time.Time `db:"lockout_end"`                 // Login rejected while in the future
	PasswordResetTokenHash   *string    `db:"password_reset_token_hash"`   // SHA-256 of the active reset token
	PasswordResetTokenExpiry *time.Time `db:"password_reset_token_expiry"` // Expiry of the active reset token
}

// IsLockedOut reports whether the lockout window is still open at now.
func (u *UserDB) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// Profile converts the record into its public representation.
func (u *UserDB) Profile() *UserProfile {
	return &UserProfile{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ProfilePicturePath: u.ProfilePicturePath,
		DateCreated:        u.DateCreated,
		LastLoginDate:      u.LastLoginDate,
	}
}

// LoginFailure is the counter state after a failed login.
type LoginFailure struct {
	FailedLoginAttempts int        `db:"failed_login_attempts"`
	LockoutEnd          *time.Time `db:"lockout_end"`
}

// UserProfile is the user data exposed to the presentation layer
// swagger:model UserProfile
type UserProfile struct {
	ID                 uuid.UUID  `json:"id"`
	Username           string     `json:"username" example:"john_doe"`
	Email              string     `json:"email" example:"john@example.com"`
	FirstName          string     `json:"first_name" example:"John"`
	LastName           string     `json:"last_name" example:"Doe"`
	ProfilePicturePath string     `json:"profile_picture_path"`
	DateCreated        time.Time  `json:"date_created"`
	LastLoginDate      *time.Time `json:"last_login_date,omitempty"`
}

// UpdateProfileRequest represents the JSON body for a profile update.
// An empty email keeps the current one.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	// example: John
	FirstName string `json:"first_name" validate:"max=50"`

	// Last name
	// example: Doe
	LastName string `json:"last_name" validate:"max=50"`

	// Email
	// example: john@example.com
	Email string `json:"email" validate:"omitempty,email,max=100"`
}
