package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// Account handles signup, login and profile edits.
type Account struct {
	accountStore model.AccountStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAccount(
	accountStore model.AccountStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Account {
	return &Account{
		accountStore: accountStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Signup registers a new account and logs it in. An existing account with the
// same email is never modified.
func (s *Account) Signup(ctx context.Context, name, email, password string) (model.Session, string, error) {
	s.logger.Debug("Account service: starting signup", "email", email)

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, model.ErrInvalidRequest) {
		return model.Session{}, "", err
	}
	if err != nil {
		s.logger.Error("Account service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.Session{}, "", err
	}

	account, err := s.accountStore.Create(ctx, model.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrDuplicateAccount) {
		s.logger.Info("Account service: email already registered", "email", email)
		return model.Session{}, "", model.ErrDuplicateAccount
	}
	if err != nil {
		s.logger.Error("Account service: failed to create account",
			"email", email,
			"error", err.Error())
		return model.Session{}, "", fmt.Errorf("failed to create account: %w", err)
	}

	session := model.Session{Email: account.Email, Name: account.Name}
	token, err := s.issueToken(session)
	if err != nil {
		return model.Session{}, "", err
	}

	s.logger.Info("Account service: account created", "email", email)

	return session, token, nil
}

// Login checks credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *Account) Login(ctx context.Context, email, password string) (model.Session, string, error) {
	account, err := s.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Account service: login for unknown email", "email", email)
		return model.Session{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to get account by email: %w", err)
	}

	if !s.hasher.Verify(account.PasswordHash, password) {
		s.logger.Info("Account service: password mismatch", "email", email)
		return model.Session{}, "", model.ErrInvalidCredentials
	}

	session := model.Session{Email: account.Email, Name: account.Name}
	token, err := s.issueToken(session)
	if err != nil {
		return model.Session{}, "", err
	}

	return session, token, nil
}

// UpdateProfile overwrites name and phone and returns a token for the renamed session.
func (s *Account) UpdateProfile(ctx context.Context, email, name, phone string) (model.Session, string, error) {
	err := s.accountStore.UpdateProfile(ctx, email, name, phone)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, "", model.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Account service: failed to update profile",
			"email", email,
			"error", err.Error())
		return model.Session{}, "", fmt.Errorf("failed to update profile: %w", err)
	}

	session := model.Session{Email: email, Name: name}
	token, err := s.issueToken(session)
	if err != nil {
		return model.Session{}, "", err
	}

	return session, token, nil
}

func (s *Account) Authenticate(_ context.Context, token string) (model.Session, error) {
	session, err := s.tokenManager.ParseAccessToken(token)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	return session, nil
}

func (s *Account) issueToken(session model.Session) (string, error) {
	token, err := s.tokenManager.GenerateAccessToken(session)
	if err != nil {
		s.logger.Error("Account service: failed to generate access token",
			"email", session.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}
