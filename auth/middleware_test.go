package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func middlewareTestServer(issuer *TokenIssuer) http.Handler {
	var inner http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		id, ok := AccountIDFromContext(r.Context())
		if !ok {
			http.Error(w, "no account in context", http.StatusInternalServerError)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]int64{"id": id})
	}
	return JWTMiddleware(issuer)(inner)
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	issuer := testIssuer(time.Hour)
	handler := middlewareTestServer(issuer)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issuer.Issue(42))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())
}

func TestJWTMiddleware_Rejections(t *testing.T) {
	issuer := testIssuer(time.Hour)
	other := testIssuer(time.Hour)
	other.secret = []byte("different-secret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + other.Issue(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middlewareTestServer(issuer)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
