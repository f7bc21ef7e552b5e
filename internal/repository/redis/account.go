package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type accountDocument struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Phone        string    `json:"phone,omitempty"`
	Preferences  string    `json:"preferences,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (d accountDocument) toModel() model.Account {
	return model.Account(d)
}

type AccountRepository struct {
	api redisAPI
}

func NewAccountRepository(api redisAPI) *AccountRepository {
	return &AccountRepository{
		api: api,
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	raw, err := r.api.Get(ctx, accountKey(email))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	var doc accountDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Account{}, fmt.Errorf("failed to decode account: %w", err)
	}

	return doc.toModel(), nil
}

// Create stores the account with SETNX so an existing email is never overwritten.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	raw, err := json.Marshal(accountDocument(account))
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to encode account: %w", err)
	}

	created, err := r.api.SetNX(ctx, accountKey(account.Email), raw)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	if !created {
		return model.Account{}, model.ErrDuplicateAccount
	}

	return account, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, email, name, phone string) error {
	err := r.api.Update(ctx, accountKey(email), func(current []byte) ([]byte, error) {
		var doc accountDocument
		if err := json.Unmarshal(current, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode account: %w", err)
		}

		doc.Name = name
		doc.Phone = phone
		doc.UpdatedAt = time.Now().UTC()

		return json.Marshal(doc)
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to update account profile: %w", err)
	}

	return nil
}
