package dashboard

import (
	"context"
	"errors"
	"fmt"

	"pet-care/internal/domain/users"
	"pet-care/internal/platform/apperr"
)

// HealthRecords es un valor fijo que el front muestra como demo; no se calcula.
const HealthRecords = 24

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
}

type PetCounter interface {
	CountByOwner(ctx context.Context, userID int64) (int, error)
}

type AppointmentCounter interface {
	CountUpcoming(ctx context.Context, userID int64) (int, error)
}

type AdoptionCounter interface {
	CountAvailable(ctx context.Context) (int, error)
}

type Stats struct {
	UserName             string
	RegisteredPets       int
	UpcomingAppointments int
	AvailableAdoption    int // global, no por usuario
	HealthRecords        int
}

type Service struct {
	users        UserLookup
	pets         PetCounter
	appointments AppointmentCounter
	adoptions    AdoptionCounter
}

func NewService(u UserLookup, p PetCounter, a AppointmentCounter, ad AdoptionCounter) *Service {
	return &Service{
		users:        u,
		pets:         p,
		appointments: a,
		adoptions:    ad,
	}
}

func (s *Service) Stats(ctx context.Context, userID int64) (Stats, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Stats{}, apperr.Unauthorized("User not logged in")
		}
		return Stats{}, err
	}

	pets, err := s.pets.CountByOwner(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("count pets: %w", err)
	}
	upcoming, err := s.appointments.CountUpcoming(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("count appointments: %w", err)
	}
	available, err := s.adoptions.CountAvailable(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count adoptions: %w", err)
	}

	return Stats{
		UserName:             u.FirstName,
		RegisteredPets:       pets,
		UpcomingAppointments: upcoming,
		AvailableAdoption:    available,
		HealthRecords:        HealthRecords,
	}, nil
}
