package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password exists only transiently inside the signup and
	// signin flows and is never persisted.
	PasswordHash string `json:"-"`

	// Role is the privilege level of the account ("Y" admin / "N" standard).
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
