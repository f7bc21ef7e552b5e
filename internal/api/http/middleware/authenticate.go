package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// Authenticator resolves a session from a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Session, error)
}

// Authenticate validates bearer tokens and injects the session into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid Authorization header with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		session, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil || session.Email == "" {
			m.logger.Debug("rejected access token",
				"path", r.URL.Path,
				"error", errString(err))
			writeJSONError(w, http.StatusUnauthorized, "invalid authorization token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetSessionToContext(r.Context(), session)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func errString(err error) string {
	if err == nil {
		return "empty session"
	}
	return err.Error()
}
