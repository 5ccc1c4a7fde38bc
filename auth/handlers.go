package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/devjournal-go/apperror"
)

// Handlers wraps the AuthService with HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Register a new account
// @Description Creates an account and returns a signed bearer token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 200 {object} auth.TokenResponse "Token for the new account"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure or duplicate email"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /api/users [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogin godoc
// @Summary Authenticate and get a token
// @Description Verifies email and password and returns a signed bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.TokenResponse "Token for the account"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure or invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Server error"
// @Router /api/auth [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON serializes data and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"errors":[{"message":"server error"}]}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standard error envelope. Server
// errors are logged with their detail here; the response stays opaque.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, appErr.Error())
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
