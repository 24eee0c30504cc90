package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pet-care/internal/domain/users"
	"pet-care/internal/platform/apperr"
)

type userRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]users.User
	byEmail map[string]int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[int64]users.User),
		byEmail: make(map[string]int64),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.TrimSpace(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return 0, fmt.Errorf("email %q: %w", email, apperr.ErrConflict)
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u.ID, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.TrimSpace(email)]
	if !ok {
		return users.User{}, fmt.Errorf("user %q: %w", email, apperr.ErrNotFound)
	}
	return r.byID[id], nil
}
