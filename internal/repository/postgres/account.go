package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	var account model.Account
	query := `SELECT email, name, password_hash, phone, preferences, created_at, updated_at
			  FROM accounts WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.Email, &account.Name, &account.PasswordHash, &account.Phone, &account.Preferences,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

// Create inserts the account unless the email is taken, in which case the
// stored row is left untouched and ErrDuplicateAccount is returned.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (email, name, password_hash, phone, preferences)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (email) DO NOTHING
			  RETURNING email, name, password_hash, phone, preferences, created_at, updated_at`

	var saved model.Account
	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.Name, account.PasswordHash, account.Phone, account.Preferences,
	).Scan(
		&saved.Email, &saved.Name, &saved.PasswordHash, &saved.Phone, &saved.Preferences,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return model.Account{}, model.ErrDuplicateAccount
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, email, name, phone string) error {
	query := `UPDATE accounts SET name = $2, phone = $3, updated_at = NOW() WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email, name, phone)
	if err != nil {
		return fmt.Errorf("failed to update account profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
