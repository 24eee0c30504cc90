// Package seed carga los datos demo: un usuario, sus tres mascotas y tres publicaciones
// de adopción. Cada alta se salta si ya existe su clave natural, así que correrlo
// varias veces no duplica nada.
package seed

import (
	"context"
	"errors"
	"fmt"

	"pet-care/internal/domain/adoptions"
	"pet-care/internal/domain/pets"
	"pet-care/internal/domain/users"
	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/logger"
	"pet-care/internal/ports/storage"
)

const (
	DemoEmail    = "john.smith@example.com"
	DemoPassword = "password123"
)

var demoUser = users.User{
	FirstName: "John",
	LastName:  "Smith",
	Email:     DemoEmail,
	Phone:     "555-123-4567",
}

var demoPets = []pets.Pet{
	{Name: "Buddy", Type: "Dog", Breed: "Golden Retriever", Gender: "Male", Age: "2 years", Weight: "28 kg", HealthStatus: "excellent", Allergies: "None", VetName: "Dr. Sarah Johnson"},
	{Name: "Luna", Type: "Cat", Breed: "Persian Cat", Gender: "Female", Age: "1.5 years", Weight: "4.2 kg", HealthStatus: "perfect", Allergies: "Chicken protein", VetName: "Dr. Michael Chen"},
	{Name: "Max", Type: "Dog", Breed: "Labrador Mix", Gender: "Male", Age: "3 years", Weight: "32 kg", HealthStatus: "good", Allergies: "Flea medication", VetName: "Dr. Emily Rodriguez"},
}

var demoAdoptions = []adoptions.Listing{
	{Name: "Buddy", Breed: "Golden Retriever", Gender: "Male", Age: "2 years", Status: adoptions.StatusAvailable, Shelter: "Happy Paws Rescue", ContactPhone: "+1 (555) 123-4567"},
	{Name: "Luna", Breed: "Persian Cat", Gender: "Female", Age: "1.5 years", Status: adoptions.StatusAvailable, Shelter: "Whiskers & Tails", ContactPhone: "+1 (555) 987-6543"},
	{Name: "Max", Breed: "Labrador Mix", Gender: "Male", Age: "3 years", Status: adoptions.StatusAvailable, Shelter: "Bay Area Animal Rescue", ContactPhone: "+1 (555) 456-7890"},
}

type Repos struct {
	Users     users.Repository
	Pets      pets.Repository
	Adoptions adoptions.Repository
}

type Seeder struct {
	repos  Repos
	hasher users.PasswordHasher
	tx     storage.TxRunner
	log    logger.Logger
}

func New(repos Repos, hasher users.PasswordHasher, tx storage.TxRunner, log logger.Logger) *Seeder {
	if tx == nil {
		tx = storage.NoTx{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{repos: repos, hasher: hasher, tx: tx, log: log}
}

// Result cuenta lo insertado en esta corrida (0 en todo si ya estaba sembrado).
type Result struct {
	Users     int
	Pets      int
	Adoptions int
}

// Run aplica el seed en una sola transacción.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		userID, created, err := s.ensureUser(ctx)
		if err != nil {
			return err
		}
		if created {
			res.Users++
		}

		for _, p := range demoPets {
			created, err := s.ensurePet(ctx, userID, p)
			if err != nil {
				return err
			}
			if created {
				res.Pets++
			}
		}

		for _, l := range demoAdoptions {
			created, err := s.ensureAdoption(ctx, l)
			if err != nil {
				return err
			}
			if created {
				res.Adoptions++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	s.log.Info("seed applied", map[string]any{
		"users":     res.Users,
		"pets":      res.Pets,
		"adoptions": res.Adoptions,
	})
	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context) (int64, bool, error) {
	u, err := s.repos.Users.GetByEmail(ctx, demoUser.Email)
	if err == nil {
		return u.ID, false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return 0, false, fmt.Errorf("lookup demo user: %w", err)
	}

	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return 0, false, err
	}
	u = demoUser
	u.PasswordHash = hash

	id, err := s.repos.Users.Create(ctx, u)
	if err != nil {
		return 0, false, fmt.Errorf("create demo user: %w", err)
	}
	return id, true, nil
}

func (s *Seeder) ensurePet(ctx context.Context, userID int64, p pets.Pet) (bool, error) {
	_, err := s.repos.Pets.FindByOwnerAndName(ctx, userID, p.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return false, fmt.Errorf("lookup demo pet %s: %w", p.Name, err)
	}

	p.UserID = userID
	if _, err := s.repos.Pets.Create(ctx, p); err != nil {
		return false, fmt.Errorf("create demo pet %s: %w", p.Name, err)
	}
	return true, nil
}

func (s *Seeder) ensureAdoption(ctx context.Context, l adoptions.Listing) (bool, error) {
	_, err := s.repos.Adoptions.FindByNameAndShelter(ctx, l.Name, l.Shelter)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return false, fmt.Errorf("lookup demo adoption %s: %w", l.Name, err)
	}

	if _, err := s.repos.Adoptions.Create(ctx, l); err != nil {
		return false, fmt.Errorf("create demo adoption %s: %w", l.Name, err)
	}
	return true, nil
}
