// Package repomanager opens the configured credential store and vends its
// repositories: PostgreSQL when a DSN is configured, in-memory otherwise.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// Open returns a PostgreSQL manager for a non-empty dsn (migrated and
// pinged), or an in-memory manager for an empty one.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
