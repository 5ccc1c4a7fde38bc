package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/devjournal-go/config"
)

// TokenUser is the account reference embedded in the token payload.
type TokenUser struct {
	ID int64 `json:"id"`
}

// Claims is the JWT payload: a user claim carrying the account identifier,
// plus the registered expiration and issued-at claims. Wire form:
//
//	{"user":{"id":7},"exp":...,"iat":...}
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenIssuer mints signed, time-limited bearer tokens. The signing secret
// is injected at construction; it is never read from ambient state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from auth configuration.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue mints a token embedding the given account identifier. The expiration
// is fixed at mint time and not extendable.
//
// A signing failure here means the process is misconfigured, not that the
// request is bad. It panics out of the request rather than returning through
// the handled error path; the router's recovery middleware converts it into
// an opaque 500.
func (t *TokenIssuer) Issue(accountID int64) string {
	now := time.Now()
	claims := &Claims{
		User: TokenUser{ID: accountID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		panic(fmt.Errorf("failed to sign token: %w", err))
	}
	return signed
}

// Verify parses a token string and returns its claims. It rejects non-HMAC
// signing methods, bad signatures, and expired tokens.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	if claims.User.ID == 0 {
		return nil, fmt.Errorf("user id claim is missing")
	}
	return claims, nil
}
