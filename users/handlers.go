package users

import (
	"net/http"

	"github.com/user/devjournal-go/apperror"
	"github.com/user/devjournal-go/auth"
)

// UserHandlers provides HTTP handlers for account profile reads.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetCurrentUser godoc
// @Summary Get the authenticated account
// @Description Returns the caller's own account record, excluding the password hash.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse "Account record"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /api/auth [get]
func (h *UserHandlers) HandleGetCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			// Only reachable if the route is wired without JWTMiddleware.
			auth.WriteError(w, r, apperror.NewUnauthorizedError("no authenticated account in context", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}
