package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore implements Store on a pgx connection pool. The accounts
// table carries a unique constraint on email (accounts_email_key), which is
// what ultimately guards the check-then-create race at registration.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) CreateAccount(ctx context.Context, account *Account) error {
	query := `INSERT INTO accounts (name, email, avatar, password_hash)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`
	err := s.pool.QueryRow(ctx, query,
		account.Name, account.Email, account.Avatar, account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PostgresStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT id, name, email, avatar, password_hash, created_at
              FROM accounts WHERE email = $1`
	return s.scanAccount(s.pool.QueryRow(ctx, query, strings.ToLower(email)))
}

func (s *PostgresStore) GetAccountByID(ctx context.Context, id int64) (*Account, error) {
	query := `SELECT id, name, email, avatar, password_hash, created_at
              FROM accounts WHERE id = $1`
	return s.scanAccount(s.pool.QueryRow(ctx, query, id))
}

func (s *PostgresStore) scanAccount(row pgx.Row) (*Account, error) {
	var account Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Avatar,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
