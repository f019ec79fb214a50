package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map keyed by email. It is used when no
// database DSN is configured and in tests. The email check and the insert
// happen under one lock, so duplicates are impossible.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]models.User),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrUserExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.IsDeleted = false
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.byEmail[stored.Email] = stored

	return &stored, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
