package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/travelgo-server/internal/model"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newFakeRedis())

	created, err := repo.Create(ctx, model.Account{
		Email: "a@x.com", Name: "Alice", PasswordHash: "hash", Phone: "+1 555", Preferences: "Trains",
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, "+1 555", got.Phone)
	assert.Equal(t, "Trains", got.Preferences)
}

func TestAccountRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newFakeRedis())

	_, err := repo.Create(ctx, model.Account{Email: "a@x.com", Name: "Alice", PasswordHash: "first"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.Account{Email: "a@x.com", Name: "Mallory", PasswordHash: "second"})
	assert.ErrorIs(t, err, model.ErrDuplicateAccount)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "first", got.PasswordHash)
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		_, err := NewAccountRepository(newFakeRedis()).GetByEmail(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("case sensitive", func(t *testing.T) {
		repo := NewAccountRepository(newFakeRedis())
		_, err := repo.Create(ctx, model.Account{Email: "a@x.com", Name: "Alice"})
		require.NoError(t, err)

		_, err = repo.GetByEmail(ctx, "A@X.COM")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		fake := newFakeRedis()
		fake.err = errors.New("connection refused")

		_, err := NewAccountRepository(fake).GetByEmail(ctx, "a@x.com")
		assert.ErrorContains(t, err, "failed to get account by email")
	})

	t.Run("corrupt document", func(t *testing.T) {
		fake := newFakeRedis()
		fake.values[accountKey("a@x.com")] = []byte("{")

		_, err := NewAccountRepository(fake).GetByEmail(ctx, "a@x.com")
		assert.ErrorContains(t, err, "failed to decode account")
	})
}

func TestAccountRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites name and phone only", func(t *testing.T) {
		repo := NewAccountRepository(newFakeRedis())
		_, err := repo.Create(ctx, model.Account{
			Email: "a@x.com", Name: "Alice", PasswordHash: "hash", Phone: "1", Preferences: "Trains",
		})
		require.NoError(t, err)

		require.NoError(t, repo.UpdateProfile(ctx, "a@x.com", "Alicia", "2"))

		got, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "2", got.Phone)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.Equal(t, "Trains", got.Preferences)
	})

	t.Run("missing account", func(t *testing.T) {
		err := NewAccountRepository(newFakeRedis()).UpdateProfile(ctx, "ghost@x.com", "G", "")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
