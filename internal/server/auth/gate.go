package auth

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// Gate decides whether a request carrying a session token may reach a
// protected handler. It never touches the credential store: a token for a
// deleted user stays valid until it expires.
type Gate struct {
	tokens *TokenManager
}

func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Admit returns the user id carried by token.
//
//	empty token             -> common.ErrUnauthenticated
//	bad or expired token    -> common.ErrInvalidToken
func (g *Gate) Admit(token string) (string, error) {
	if token == "" {
		return "", common.ErrUnauthenticated
	}
	return g.tokens.GetUserIDFromToken(token)
}

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID attaches the admitted user id to ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id attached by WithUserID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
