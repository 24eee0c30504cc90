package appointments

import (
	"context"
	"errors"
	"strings"

	"pet-care/internal/platform/apperr"
	"pet-care/internal/ports/storage"
)

const MsgPetNotFound = "Selected pet not found in user records"

// PetResolver evita importar el paquete pets (lo implementa pets.Service).
type PetResolver interface {
	OwnedPetByName(ctx context.Context, userID int64, name string) (int64, error)
	OwnedPetByID(ctx context.Context, userID, petID int64) (int64, error)
}

type Service struct {
	repo Repository
	pets PetResolver
	tx   storage.TxRunner
}

func NewService(repo Repository, pets PetResolver, tx storage.TxRunner) *Service {
	if tx == nil {
		tx = storage.NoTx{}
	}
	return &Service{
		repo: repo,
		pets: pets,
		tx:   tx,
	}
}

type ScheduleInput struct {
	// PetID, si viene, tiene prioridad sobre PetInfo.
	PetID *int64
	// PetInfo es el texto del selector del front: "Buddy - Golden Retriever".
	PetInfo string

	DoctorName   string
	HospitalName string
	Date         string
	Time         string
	Reason       string
}

// PetNameFromInfo devuelve lo que está antes del primer " - " (o el texto entero
// si no hay separador), tal cual: la búsqueda por nombre es exacta.
func PetNameFromInfo(petInfo string) string {
	name, _, _ := strings.Cut(petInfo, " - ")
	return name
}

func (s *Service) Schedule(ctx context.Context, userID int64, in ScheduleInput) (Appointment, error) {
	if userID <= 0 {
		return Appointment{}, apperr.Unauthorized("User not logged in")
	}

	a := Appointment{
		UserID:       userID,
		DoctorName:   strings.TrimSpace(in.DoctorName),
		HospitalName: strings.TrimSpace(in.HospitalName),
		Date:         strings.TrimSpace(in.Date),
		Time:         strings.TrimSpace(in.Time),
		Reason:       strings.TrimSpace(in.Reason),
		Status:       StatusUpcoming,
	}
	for _, v := range []string{a.DoctorName, a.HospitalName, a.Date, a.Time, a.Reason} {
		if v == "" {
			return Appointment{}, apperr.Validation(apperr.MsgMissingFields)
		}
	}

	// la mascota se verifica y el turno se inserta en la misma transacción
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		petID, err := s.resolvePet(ctx, userID, in)
		if err != nil {
			return err
		}
		a.PetID = petID

		id, err := s.repo.Create(ctx, a)
		if err != nil {
			return err
		}
		a.ID = id
		return nil
	})
	if err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) resolvePet(ctx context.Context, userID int64, in ScheduleInput) (int64, error) {
	var (
		petID int64
		err   error
	)
	switch {
	case in.PetID != nil:
		petID, err = s.pets.OwnedPetByID(ctx, userID, *in.PetID)
	default:
		if strings.TrimSpace(in.PetInfo) == "" {
			return 0, apperr.Validation(apperr.MsgMissingFields)
		}
		petID, err = s.pets.OwnedPetByName(ctx, userID, PetNameFromInfo(in.PetInfo))
	}

	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return 0, apperr.NotFound(MsgPetNotFound)
		}
		return 0, err
	}
	return petID, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) CountUpcoming(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountByUserAndStatus(ctx, userID, StatusUpcoming)
}
