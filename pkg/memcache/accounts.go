// pkg/memcache/accounts.go
package mem

import (
	"sync"
)

// Account is a registered user. Passwords are stored bcrypt-hashed.
type Account struct {
	ID           string
	DisplayName  string
	Email        string
	PasswordHash string
}

// AccountStore keeps accounts in memory for the lifetime of the process.
// There is no persistence layer; restarting the server drops all accounts.
type AccountStore interface {
	// FindByEmail returns nil when no account exists for the email.
	FindByEmail(email string) *Account
	// Save inserts the account. Returns false if the email is taken.
	Save(account Account) bool
}

type Accounts struct {
	mu   sync.RWMutex
	data map[string]Account // keyed by email
}

func NewAccounts() *Accounts {
	return &Accounts{
		data: make(map[string]Account),
	}
}

func (s *Accounts) FindByEmail(email string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.data[email]
	if !ok {
		return nil
	}
	return &account
}

func (s *Accounts) Save(account Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[account.Email]; exists {
		return false
	}
	s.data[account.Email] = account
	return true
}
