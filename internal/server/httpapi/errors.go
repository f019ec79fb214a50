package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Message string `json:"message"`
}

// ToAPIError maps a service or gate error to a status and a client-safe
// body. Server-side failures get fallback as message; their details stay
// in the log.
func ToAPIError(err error, fallback string) (int, APIError) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, APIError{Message: "Please enter all fields"}
	case errors.Is(err, common.ErrUserExists):
		return http.StatusBadRequest, APIError{Message: "User already exists"}
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, APIError{Message: "Invalid credentials"}
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, APIError{Message: "No token, authorization denied"}
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, APIError{Message: "Token is not valid or expired"}
	default:
		return http.StatusInternalServerError, APIError{Message: fallback}
	}
}
