package pets

import (
	"context"
	"errors"
	"testing"

	"pet-care/internal/platform/apperr"
)

type testRepo struct {
	byID map[int64]Pet
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Pet{}} }

func (r *testRepo) Create(ctx context.Context, p Pet) (int64, error) {
	p.ID = int64(len(r.byID) + 1)
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, userID int64) ([]Pet, error) {
	out := make([]Pet, 0)
	for id := int64(1); id <= int64(len(r.byID)); id++ {
		if p := r.byID[id]; p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) FindByOwnerAndName(ctx context.Context, userID int64, name string) (Pet, error) {
	list, _ := r.ListByOwner(ctx, userID)
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}
	return Pet{}, apperr.ErrNotFound
}

func (r *testRepo) CountByOwner(ctx context.Context, userID int64) (int, error) {
	list, _ := r.ListByOwner(ctx, userID)
	return len(list), nil
}

func validPet() CreateInput {
	return CreateInput{
		Name: "Buddy", Type: "Dog", Breed: "Golden Retriever", Gender: "Male",
		Age: "2 years", Weight: "28 kg", HealthStatus: "excellent",
	}
}

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	p, err := svc.Create(context.Background(), 1, validPet())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Allergies != DefaultAllergies || p.VetName != "" || p.UserID != 1 {
		t.Fatalf("unexpected defaults %+v", p)
	}

	in := validPet()
	allergies, vet := "Chicken protein", "Dr. Michael Chen"
	in.Allergies, in.VetName = &allergies, &vet
	p, err = svc.Create(context.Background(), 1, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Allergies != allergies || p.VetName != vet {
		t.Fatalf("optional fields not stored %+v", p)
	}
}

func TestService_Create_MissingFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	in := validPet()
	in.Weight = " "
	if _, err := svc.Create(context.Background(), 1, in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("pet stored on validation error")
	}
}

func TestService_OwnedPetByID(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	p, _ := svc.Create(context.Background(), 1, validPet())

	if id, err := svc.OwnedPetByID(context.Background(), 1, p.ID); err != nil || id != p.ID {
		t.Fatalf("expected owned pet, got %d %v", id, err)
	}
	if _, err := svc.OwnedPetByID(context.Background(), 2, p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for other owner, got %v", err)
	}
}
