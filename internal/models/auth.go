package models

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email address, used as the login key
	// required: true
	// example: user@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password, 8 to 72 characters
	// required: true
	// example: SecurePass123
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Registered email address
	// required: true
	// example: user@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: SecurePass123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Authenticated user
	User UserProfile `json:"user"`

	// Bearer token for authenticated requests
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	Token string `json:"token"`

	// Success message
	// example: Login successful
	Message string `json:"message"`
}

// SessionResponse describes the caller's authentication state
// swagger:model SessionResponse
type SessionResponse struct {
	// Whether a valid token was presented
	Authenticated bool `json:"authenticated"`

	// Authenticated user, absent for anonymous callers
	User *UserProfile `json:"user,omitempty"`
}
