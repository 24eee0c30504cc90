package memory

import (
	"context"
	"fmt"
	"sync"

	"pet-care/internal/domain/adoptions"
	"pet-care/internal/platform/apperr"
)

type adoptionRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []adoptions.Listing
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{}
}

func (r *adoptionRepo) Create(ctx context.Context, l adoptions.Listing) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	l.ID = r.nextID
	r.rows = append(r.rows, l)
	return l.ID, nil
}

func (r *adoptionRepo) FindByNameAndShelter(ctx context.Context, name, shelter string) (adoptions.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.rows {
		if l.Name == name && l.Shelter == shelter {
			return l, nil
		}
	}
	return adoptions.Listing{}, fmt.Errorf("adoption %q at %q: %w", name, shelter, apperr.ErrNotFound)
}

func (r *adoptionRepo) CountByStatus(ctx context.Context, status adoptions.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, l := range r.rows {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}
