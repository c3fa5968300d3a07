package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique, case-sensitive login key
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserProfile is the public view of a user
// swagger:model UserProfile
type UserProfile struct {
	// Unique user identifier
	// example: 1
	ID int64 `json:"id"`

	// User email address
	// example: user@example.com
	Email string `json:"email"`

	// Account creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// NewUserProfile builds the public view of u.
func NewUserProfile(u *User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
