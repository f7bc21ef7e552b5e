package model

import (
	"context"
	"time"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	UpdateProfile(ctx context.Context, email, name, phone string) error
}

// Account represents a registered user keyed by email.
// PasswordHash is opaque to stores.
type Account struct {
	Email        string
	Name         string
	PasswordHash string
	Phone        string
	Preferences  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}
