package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager serves process-local repositories. Data is lost
// on restart.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Close() error { return nil }
