// Package models holds the records persisted by the credential store.
package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt digest
// (salt embedded) and must never leave the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	// IsDeleted is written as false on creation and not consulted by any
	// lookup yet.
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
