package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/travelgo-server/internal/mocks"
	"github.com/dtroode/travelgo-server/internal/model"
	"github.com/dtroode/travelgo-server/internal/testutil"
)

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestAccount_Signup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.AccountService)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: `{"name":"Alice","email":"a@x.com","password":"pw"}`,
			mockSetup: func(s *mocks.AccountService) {
				s.On("Signup", mock.Anything, "Alice", "a@x.com", "pw").
					Return(model.Session{Email: "a@x.com", Name: "Alice"}, "tok", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"name":"Alice","email":"a@x.com","password":"pw"}`,
			mockSetup: func(s *mocks.AccountService) {
				s.On("Signup", mock.Anything, "Alice", "a@x.com", "pw").
					Return(model.Session{}, "", model.ErrDuplicateAccount)
			},
			wantStatus: http.StatusConflict,
			wantError:  "email already registered",
		},
		{
			name:       "invalid email",
			body:       `{"name":"Alice","email":"not-an-email","password":"pw"}`,
			mockSetup:  func(*mocks.AccountService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid field Email: failed on email",
		},
		{
			name:       "empty body",
			body:       ``,
			mockSetup:  func(*mocks.AccountService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "request body is empty",
		},
		{
			name:       "multibyte password over bcrypt limit",
			body:       `{"name":"Alice","email":"a@x.com","password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup:  func(*mocks.AccountService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid field Password: failed on maxbytes",
		},
		{
			name: "hasher rejects password",
			body: `{"name":"Alice","email":"a@x.com","password":"pw"}`,
			mockSetup: func(s *mocks.AccountService) {
				s.On("Signup", mock.Anything, "Alice", "a@x.com", "pw").
					Return(model.Session{}, "", fmt.Errorf("%w: password must be at most 72 bytes", model.ErrInvalidRequest))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request: password must be at most 72 bytes",
		},
		{
			name: "internal failure hides details",
			body: `{"name":"Alice","email":"a@x.com","password":"pw"}`,
			mockSetup: func(s *mocks.AccountService) {
				s.On("Signup", mock.Anything, "Alice", "a@x.com", "pw").
					Return(model.Session{}, "", errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAccountService(t)
			tt.mockSetup(svc)
			h := NewAccount(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Signup(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[ErrorResponse](t, rec).Error)
				return
			}
			assert.Equal(t, sessionResponse{Email: "a@x.com", Name: "Alice", Token: "tok"}, decodeBody[sessionResponse](t, rec))
		})
	}
}

func TestAccount_Login(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewAccountService(t)
		svc.On("Login", mock.Anything, "a@x.com", "pw").
			Return(model.Session{Email: "a@x.com", Name: "Alice"}, "tok", nil)
		h := NewAccount(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"pw"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "tok", decodeBody[sessionResponse](t, rec).Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := mocks.NewAccountService(t)
		svc.On("Login", mock.Anything, "a@x.com", "bad").Return(model.Session{}, "", model.ErrInvalidCredentials)
		h := NewAccount(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"bad"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		h := NewAccount(mocks.NewAccountService(t), mocks.NewContextManager(t), testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"pw","admin":true}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccount_UpdateProfile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewAccountService(t)
		cm := mocks.NewContextManager(t)
		cm.On("GetSessionFromContext", mock.Anything).Return(model.Session{Email: "a@x.com", Name: "Alice"}, true)
		svc.On("UpdateProfile", mock.Anything, "a@x.com", "Alicia", "+1 555").
			Return(model.Session{Email: "a@x.com", Name: "Alicia"}, "tok2", nil)
		h := NewAccount(svc, cm, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"Alicia","phone":"+1 555"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, sessionResponse{Email: "a@x.com", Name: "Alicia", Token: "tok2"}, decodeBody[sessionResponse](t, rec))
	})

	t.Run("no session", func(t *testing.T) {
		cm := mocks.NewContextManager(t)
		cm.On("GetSessionFromContext", mock.Anything).Return(model.Session{}, false)
		h := NewAccount(mocks.NewAccountService(t), cm, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"A"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("account gone", func(t *testing.T) {
		svc := mocks.NewAccountService(t)
		cm := mocks.NewContextManager(t)
		cm.On("GetSessionFromContext", mock.Anything).Return(model.Session{Email: "a@x.com"}, true)
		svc.On("UpdateProfile", mock.Anything, "a@x.com", "A", "").Return(model.Session{}, "", model.ErrAccountNotFound)
		h := NewAccount(svc, cm, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"A"}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
