package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/devjournal-go/config"
)

func testIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(config.AuthConfig{
		JWTSecret: "test-signing-secret",
		TokenTTL:  ttl,
	})
}

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	issuer := testIssuer(time.Hour)

	token := issuer.Issue(42)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_WrongSecret(t *testing.T) {
	token := testIssuer(time.Hour).Issue(7)

	other := NewTokenIssuer(config.AuthConfig{JWTSecret: "another-secret", TokenTTL: time.Hour})
	_, err := other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_TamperedSignature(t *testing.T) {
	issuer := testIssuer(time.Hour)
	token := issuer.Issue(7)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err := issuer.Verify(forged)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	issuer := testIssuer(-time.Minute)
	token := issuer.Issue(7)

	_, err := issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := testIssuer(time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	assert.Error(t, err)
}
