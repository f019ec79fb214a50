// Package auth implements the authentication protocol primitives: bcrypt
// password hashing, HS256 session tokens and the access gate that admits
// or rejects a request based on its token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims (iat, exp) plus the user id under "id".
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// TokenManager mints and verifies session tokens. Tokens are stateless:
// nothing is stored server side, validity is re-derived from the signature
// and the exp claim on every request.
type TokenManager struct {
	secretKey []byte
	lifetime  time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey []byte, lifetime time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, lifetime: lifetime, now: time.Now}
}

// WithClock returns a copy of m that reads the current time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	c := *m
	c.now = now
	return &c
}

// Lifetime is the validity window of freshly issued tokens.
func (m *TokenManager) Lifetime() time.Duration {
	return m.lifetime
}

// GenerateToken signs a token for userID and returns it with its expiry.
// Claim times have second precision.
func (m *TokenManager) GenerateToken(userID string) (string, time.Time, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
		UserID: userID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, claims.ExpiresAt.Time, nil
}

// GetUserIDFromToken verifies the signature, algorithm and expiry of
// tokenString and returns the embedded user id. Every failure matches
// common.ErrInvalidToken; expired tokens also match common.ErrTokenExpired.
// A token is expired from the exp second on.
func (m *TokenManager) GetUserIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
