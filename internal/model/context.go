package model

import "context"

// Session is the authenticated caller supplied to every account and booking operation.
type Session struct {
	Email string
	Name  string
}

type ContextManager interface {
	SetSessionToContext(ctx context.Context, session Session) context.Context
	GetSessionFromContext(ctx context.Context) (Session, bool)
}
