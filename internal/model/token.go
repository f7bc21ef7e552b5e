package model

// TokenManager issues and validates session access tokens.
type TokenManager interface {
	GenerateAccessToken(session Session) (string, error)
	ParseAccessToken(token string) (Session, error)
}
