package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/devjournal-go/apperror"
)

func newTestRouter(svc *AuthService) *chi.Mux {
	h := NewHandlers(svc)
	r := chi.NewRouter()
	r.Post("/api/users", h.HandleRegister())
	r.Post("/api/auth", h.HandleLogin())
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) apperror.ErrorResponse {
	t.Helper()
	var resp apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleRegister_Success(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))

	rec := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name":"Ada","email":"ada@example.com","password":"longenough"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestHandleRegister_MalformedBody(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))

	rec := doJSON(t, router, http.MethodPost, "/api/users", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeErrors(t, rec).Errors)
}

func TestHandleRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "empty name",
			body:    `{"name":"","email":"ada@example.com","password":"longenough"}`,
			message: "name is required",
		},
		{
			name:    "short password",
			body:    `{"name":"Ada","email":"ada@example.com","password":"short"}`,
			message: "please enter a password with 6 or more characters",
		},
		{
			name:    "invalid email",
			body:    `{"name":"Ada","email":"nope","password":"longenough"}`,
			message: "please include a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(newTestService(newMemStore()))

			rec := doJSON(t, router, http.MethodPost, "/api/users", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeErrors(t, rec)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.message, resp.Errors[0].Message)
		})
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))
	body := `{"name":"Ada","email":"ada@example.com","password":"longenough"}`

	rec := doJSON(t, router, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"message":"user already exists"}]}`, rec.Body.String())
}

func TestHandleLogin_Roundtrip(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))

	rec := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name":"Ada","email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLogin_FailuresShareOneBody(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))

	rec := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name":"Ada","email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	wrongPw := doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email":"ada@example.com","password":"wrong123"}`)
	unknown := doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email":"nobody@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPw.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
	assert.JSONEq(t, `{"errors":[{"message":"invalid credentials"}]}`, wrongPw.Body.String())
}

func TestHandleLogin_MissingPassword(t *testing.T) {
	router := newTestRouter(newTestService(newMemStore()))

	rec := doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email":"ada@example.com","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrors(t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "password is required", resp.Errors[0].Message)
}
