package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,notblank,max=50"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=100"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=100"`

	// Password confirmation, must match Password
	// required: true
	// example: secret123
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	// First name
	// example: John
	FirstName string `json:"first_name" validate:"max=50"`

	// Last name
	// example: Doe
	LastName string `json:"last_name" validate:"max=50"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`

	// Keep the session cookie after the browser is closed
	RememberMe bool `json:"remember_me"`
}

// ForgotPasswordRequest represents the JSON body for requesting a reset token
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the JSON body for resetting a password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset token delivered to the user
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	// example: newsecret123
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`

	// New password confirmation
	// required: true
	// example: newsecret123
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
