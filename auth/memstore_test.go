package auth

import (
	"context"
	"strings"
	"sync"
	"time"
)

// memStore is an in-memory Store used by tests. It enforces email uniqueness
// at insert time the way accounts_email_key does, case-insensitively.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]*Account
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[int64]*Account)}
}

func (m *memStore) CreateAccount(_ context.Context, account *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return ErrDuplicateEmail
		}
	}

	m.nextID++
	account.ID = m.nextID
	account.CreatedAt = time.Now()
	stored := *account
	m.accounts[account.ID] = &stored
	return nil
}

func (m *memStore) GetAccountByEmail(_ context.Context, email string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.accounts {
		if strings.EqualFold(account.Email, email) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (m *memStore) GetAccountByID(_ context.Context, id int64) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

// racingStore simulates a lost check-then-create race: the lookup reports no
// account, but the insert hits the uniqueness constraint.
type racingStore struct {
	*memStore
}

func (r *racingStore) GetAccountByEmail(context.Context, string) (*Account, error) {
	return nil, ErrAccountNotFound
}
