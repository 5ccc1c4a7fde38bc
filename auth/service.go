// Package auth implements the credential/token issuance protocol: new-user
// registration, credential-based login, and the signed bearer tokens both
// hand back.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/devjournal-go/apperror"
	"github.com/user/devjournal-go/avatar"
)

// AuthService provides registration, login, and account lookup.
type AuthService struct {
	store  Store
	issuer *TokenIssuer
}

// NewAuthService creates an AuthService over the given store and token issuer.
func NewAuthService(store Store, issuer *TokenIssuer) *AuthService {
	return &AuthService{
		store:  store,
		issuer: issuer,
	}
}

// Register validates the request, creates the account, and returns a token
// for it. Exactly one account record is created, only on the success path.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)

	// Early duplicate check for the friendly error. The unique constraint on
	// the insert below remains the authoritative guard; two concurrent
	// registrations for the same email can both pass this lookup.
	_, err := s.store.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, apperror.NewConflictError("user already exists", nil)
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, apperror.NewDatabaseError("failed to check for existing account", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	account := &Account{
		Name:         req.Name,
		Email:        email,
		Avatar:       avatar.URL(email),
		PasswordHash: string(hashed),
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.NewConflictError("user already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create account", err)
	}

	return &TokenResponse{Token: s.issuer.Issue(account.ID)}, nil
}

// Login authenticates by email and password and returns a token. Unknown
// email and wrong password produce the same error so the response does not
// reveal whether an email is registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	account, err := s.store.GetAccountByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, apperror.NewCredentialsError("invalid credentials", nil)
		}
		log.Printf("login: account lookup failed: %v", err)
		return nil, apperror.NewDatabaseError("failed to get account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewCredentialsError("invalid credentials", nil)
	}

	return &TokenResponse{Token: s.issuer.Issue(account.ID)}, nil
}

// CurrentAccount returns the account for an already-verified identifier.
// A verified token whose account no longer exists surfaces as an internal
// error; the caller was authenticated, so this is not a client mistake.
func (s *AuthService) CurrentAccount(ctx context.Context, accountID int64) (*Account, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to get account", err)
	}
	return account, nil
}
