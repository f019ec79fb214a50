// Package users provides the credential store: persistence and lookup of
// user records by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// Repository is the credential store contract consumed by the auth service.
//
// FindByEmail performs an exact, case-sensitive match and returns (nil, nil)
// when no record exists. Create stores a new record and returns it with the
// generated id and timestamps; a second record with the same email fails
// with common.ErrUserExists.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
