// Package common defines shared constants and sentinel errors used across
// the server, the HTTP transport and the client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Input validation errors.
	ErrValidation = errors.New("please enter all fields")

	// Registration errors.
	ErrUserExists = errors.New("user already exists")

	// Login errors. Unknown email and wrong password share this value.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Access gate errors.
	ErrUnauthenticated = errors.New("no token, authorization denied")
	ErrInvalidToken    = errors.New("token is not valid or expired")
	ErrTokenExpired    = errors.New("token expired")

	// Storage errors (connectivity, unexpected driver failures).
	ErrStorage = errors.New("storage error")

	// Anything else that is the server's fault (hashing, signing).
	ErrInternal = errors.New("internal error")
)
