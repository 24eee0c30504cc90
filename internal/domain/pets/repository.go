package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, userID int64) ([]Pet, error)
	// FindByOwnerAndName devuelve el primer match por id ascendente.
	FindByOwnerAndName(ctx context.Context, userID int64, name string) (Pet, error)
	CountByOwner(ctx context.Context, userID int64) (int, error)
}
