package auth

import (
	"context"
	"errors"
)

// Store errors. The postgres implementation maps driver errors onto these so
// the service layer never inspects driver types.
var (
	// ErrAccountNotFound is returned by lookups that match no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert violates the email
	// uniqueness constraint. The constraint at write time is the
	// authoritative duplicate signal; the pre-insert lookup in the service
	// only provides an earlier answer for the common case.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the account persistence interface. Accounts are created once and
// never updated or deleted by any operation in scope.
type Store interface {
	// CreateAccount persists a new account and fills in its assigned ID and
	// creation timestamp. Returns ErrDuplicateEmail on a uniqueness violation.
	CreateAccount(ctx context.Context, account *Account) error
	// GetAccountByEmail looks an account up by its unique email.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	// GetAccountByID looks an account up by its identifier.
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
}
