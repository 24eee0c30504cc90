package dashboard

import (
	"context"
	"errors"
	"testing"

	"pet-care/internal/domain/users"
	"pet-care/internal/platform/apperr"
)

type fakeUsers map[int64]users.User

func (f fakeUsers) GetByID(ctx context.Context, id int64) (users.User, error) {
	u, ok := f[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

type fixedCount int

func (c fixedCount) CountByOwner(context.Context, int64) (int, error)  { return int(c), nil }
func (c fixedCount) CountUpcoming(context.Context, int64) (int, error) { return int(c), nil }
func (c fixedCount) CountAvailable(context.Context) (int, error)       { return int(c), nil }

func TestService_Stats(t *testing.T) {
	svc := NewService(fakeUsers{1: {ID: 1, FirstName: "John"}}, fixedCount(3), fixedCount(2), fixedCount(5))

	st, err := svc.Stats(context.Background(), 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{UserName: "John", RegisteredPets: 3, UpcomingAppointments: 2, AvailableAdoption: 5, HealthRecords: 24}
	if st != want {
		t.Fatalf("got %+v, want %+v", st, want)
	}
}

func TestService_Stats_UnknownUser(t *testing.T) {
	svc := NewService(fakeUsers{}, fixedCount(0), fixedCount(0), fixedCount(0))

	_, err := svc.Stats(context.Background(), 99)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
