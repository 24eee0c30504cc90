package pets

import (
	"context"
	"strings"

	"pet-care/internal/platform/apperr"
	"pet-care/internal/ports/storage"
)

type Service struct {
	repo Repository
	tx   storage.TxRunner
}

func NewService(repo Repository, tx storage.TxRunner) *Service {
	if tx == nil {
		tx = storage.NoTx{}
	}
	return &Service{repo: repo, tx: tx}
}

type CreateInput struct {
	Name         string
	Type         string
	Breed        string
	Gender       string
	Age          string
	Weight       string
	HealthStatus string

	// Opcionales: nil = no enviado (Allergies toma DefaultAllergies, Vet queda "").
	Allergies *string
	VetName   *string
}

func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (Pet, error) {
	if userID <= 0 {
		return Pet{}, apperr.Unauthorized("User not logged in")
	}

	p := Pet{
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Type:         strings.TrimSpace(in.Type),
		Breed:        strings.TrimSpace(in.Breed),
		Gender:       strings.TrimSpace(in.Gender),
		Age:          strings.TrimSpace(in.Age),
		Weight:       strings.TrimSpace(in.Weight),
		HealthStatus: strings.TrimSpace(in.HealthStatus),
		Allergies:    DefaultAllergies,
	}
	for _, v := range []string{p.Name, p.Type, p.Breed, p.Gender, p.Age, p.Weight, p.HealthStatus} {
		if v == "" {
			return Pet{}, apperr.Validation(apperr.MsgMissingFields)
		}
	}

	if in.Allergies != nil {
		p.Allergies = strings.TrimSpace(*in.Allergies)
	}
	if in.VetName != nil {
		p.VetName = strings.TrimSpace(*in.VetName)
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, p)
		p.ID = id
		return err
	})
	if err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) CountByOwner(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountByOwner(ctx, userID)
}
