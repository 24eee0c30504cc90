package adoptions

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

type RegisterInput struct {
	Name         string
	Breed        string
	Gender       string
	Age          string
	Shelter      string
	ContactPhone string
}

// Register publica un animal en adopción con status Available. Todos los campos son obligatorios.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Listing, error) {
	l := Listing{
		Name:         strings.TrimSpace(in.Name),
		Breed:        strings.TrimSpace(in.Breed),
		Gender:       strings.TrimSpace(in.Gender),
		Age:          strings.TrimSpace(in.Age),
		Status:       StatusAvailable,
		Shelter:      strings.TrimSpace(in.Shelter),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
	}
	for _, v := range []string{l.Name, l.Breed, l.Gender, l.Age, l.Shelter, l.ContactPhone} {
		if v == "" {
			return Listing{}, apperr.Validation(apperr.MsgMissingFields)
		}
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, l)
		l.ID = id
		return err
	})
	if err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) CountAvailable(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusAvailable)
}
