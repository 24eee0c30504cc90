package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, l Listing) (int64, error)
	FindByNameAndShelter(ctx context.Context, name, shelter string) (Listing, error)
	// CountByStatus es global (no depende del usuario).
	CountByStatus(ctx context.Context, status Status) (int, error)
}
