package auth

import "time"

// Account represents a persisted user account, keyed by unique email.
type Account struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	// PasswordHash is the bcrypt hash of the password. Never the plaintext,
	// and never serialized.
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
