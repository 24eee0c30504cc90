package pets

import (
	"context"
	"fmt"

	"pet-care/internal/platform/apperr"
)

// OwnedPetByName y OwnedPetByID exponen solo el id de una mascota del usuario.
// Se usan desde appointments sin que ese paquete dependa del modelo completo.
func (s *Service) OwnedPetByName(ctx context.Context, userID int64, name string) (int64, error) {
	p, err := s.repo.FindByOwnerAndName(ctx, userID, name)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *Service) OwnedPetByID(ctx context.Context, userID, petID int64) (int64, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	if p.UserID != userID {
		return 0, fmt.Errorf("pet %d not owned by user %d: %w", petID, userID, apperr.ErrNotFound)
	}
	return p.ID, nil
}
