package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) (int64, error)
	// ListByUser ordena por date DESC, time DESC (comparación de strings).
	ListByUser(ctx context.Context, userID int64) ([]Appointment, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status Status) (int, error)
}
