package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// AccountService defines account operations exposed over HTTP.
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) (model.Session, string, error)
	Login(ctx context.Context, email, password string) (model.Session, string, error)
	UpdateProfile(ctx context.Context, email, name, phone string) (model.Session, string, error)
}

// Account handles signup, login and profile edits.
type Account struct {
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAccount(accountService AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Account) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	session, token, err := h.accountService.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, sessionResponse{Email: session.Email, Name: session.Name, Token: token})
}

func (h *Account) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	session, token, err := h.accountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, sessionResponse{Email: session.Email, Name: session.Name, Token: token})
}

func (h *Account) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateProfileRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	session, token, err := h.accountService.UpdateProfile(r.Context(), current.Email, req.Name, req.Phone)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, sessionResponse{Email: session.Email, Name: session.Name, Token: token})
}
