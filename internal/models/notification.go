package models

import "time"

// PasswordResetNotification is published for the delivery service.
type PasswordResetNotification struct {
	Recipient string    `json:"recipient"`  // Email address of the account
	Token     string    `json:"token"`      // Raw reset token, only ever sent here
	ExpiresAt time.Time `json:"expires_at"` // Token expiry
}
