package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care/internal/domain/appointments"
)

type appointmentRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.rows = append(r.rows, a)
	return a.ID, nil
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID int64) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}

	// mismo orden que el store SQL: date DESC, time DESC, id DESC
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time > out[j].Time
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *appointmentRepo) CountByUserAndStatus(ctx context.Context, userID int64, status appointments.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.rows {
		if a.UserID == userID && a.Status == status {
			n++
		}
	}
	return n, nil
}
