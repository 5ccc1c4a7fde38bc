// Package users exposes the identity-lookup endpoint: an authenticated
// caller's own account record, minus its secret fields.
package users

import "time"

// ProfileResponse is the account record returned to its owner. The password
// hash is excluded by construction: it has no field here.
type ProfileResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	Avatar    string    `json:"avatar" example:"https://www.gravatar.com/avatar/abc123?d=mm&r=pg&s=200"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-15T10:30:00Z"`
}
