package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pet-care/internal/domain/pets"
	"pet-care/internal/platform/apperr"
)

type petRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, fmt.Errorf("pet %d: %w", id, apperr.ErrNotFound)
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, userID int64) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ownedLocked(userID), nil
}

func (r *petRepo) FindByOwnerAndName(ctx context.Context, userID int64, name string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.ownedLocked(userID) {
		if p.Name == name {
			return p, nil
		}
	}
	return pets.Pet{}, fmt.Errorf("pet %q: %w", name, apperr.ErrNotFound)
}

func (r *petRepo) CountByOwner(ctx context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ownedLocked(userID)), nil
}

// ownedLocked devuelve las mascotas del usuario por id ascendente (orden de alta).
func (r *petRepo) ownedLocked(userID int64) []pets.Pet {
	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
