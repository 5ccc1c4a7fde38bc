// Data transfer objects for the authentication endpoints. The `validate`
// tags drive request validation; each failed rule produces its own entry in
// the error response (see validate.go for the message wording).
package auth

// RegisterRequest is the payload for POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Ada Lovelace"`
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"longenough"`
}

// LoginRequest is the payload for POST /api/auth.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"longenough"`
}

// TokenResponse carries the signed bearer token returned on successful
// registration or login.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
