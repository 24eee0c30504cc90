package users

import (
	"context"
	"errors"
	"strings"

	"pet-care/internal/platform/apperr"
	"pet-care/internal/ports/storage"
)

const (
	MsgEmailExists        = "Email already exists"
	MsgInvalidCredentials = "Invalid email or password"
)

type Service struct {
	repo   Repository
	hasher PasswordHasher
	tx     storage.TxRunner
}

func NewService(repo Repository, hasher PasswordHasher, tx storage.TxRunner) *Service {
	if tx == nil {
		tx = storage.NoTx{}
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tx:     tx,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || strings.TrimSpace(in.Password) == "" {
		return User{}, apperr.Validation(apperr.MsgMissingFields)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, u)
		u.ID = id
		return err
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return User{}, apperr.Conflict(MsgEmailExists, err)
		}
		return User{}, err
	}
	return u, nil
}

// Login compara email exacto + password. Cualquier falla es la misma respuesta (no revela cuál).
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, apperr.Validation(apperr.MsgMissingFields)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.Unauthorized(MsgInvalidCredentials)
		}
		return User{}, err
	}

	if !s.hasher.Verify(u.PasswordHash, password) {
		return User{}, apperr.Unauthorized(MsgInvalidCredentials)
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}
