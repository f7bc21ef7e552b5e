package context

import (
	"context"

	"github.com/dtroode/travelgo-server/internal/model"
)

type sessionKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated session in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetSessionToContext(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext reports false when no session with an email is present.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(model.Session)
	if !ok || session.Email == "" {
		return model.Session{}, false
	}
	return session, true
}
