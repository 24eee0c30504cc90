package sqldb

import (
	"context"

	"pet-care/internal/domain/appointments"
)

type appointmentRow struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"`
	PetID        int64  `db:"pet_id"`
	DoctorName   string `db:"doctor_name"`
	HospitalName string `db:"hospital_name"`
	Date         string `db:"date"`
	Time         string `db:"time"`
	Reason       string `db:"reason"`
	Status       string `db:"status"`
}

func (r appointmentRow) toDomain() appointments.Appointment {
	return appointments.Appointment{
		ID:           r.ID,
		UserID:       r.UserID,
		PetID:        r.PetID,
		DoctorName:   r.DoctorName,
		HospitalName: r.HospitalName,
		Date:         r.Date,
		Time:         r.Time,
		Reason:       r.Reason,
		Status:       appointments.Status(r.Status),
	}
}

type AppointmentsRepo struct {
	gw *Gateway
}

func NewAppointmentsRepo(gw *Gateway) *AppointmentsRepo {
	return &AppointmentsRepo{gw: gw}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	var id int64
	err := r.gw.Get(ctx, &id, `
		INSERT INTO appointments (
			user_id, pet_id, doctor_name, hospital_name,
			date, time, reason, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		a.UserID,
		a.PetID,
		a.DoctorName,
		a.HospitalName,
		a.Date,
		a.Time,
		a.Reason,
		string(a.Status),
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, userID int64) ([]appointments.Appointment, error) {
	var rows []appointmentRow
	err := r.gw.Select(ctx, &rows, `
		SELECT id, user_id, pet_id, doctor_name, hospital_name, date, time, reason, status
		FROM appointments
		WHERE user_id = ?
		ORDER BY date DESC, time DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AppointmentsRepo) CountByUserAndStatus(ctx context.Context, userID int64, status appointments.Status) (int, error) {
	var n int
	err := r.gw.Get(ctx, &n, `SELECT COUNT(*) FROM appointments WHERE user_id = ? AND status = ?`, userID, string(status))
	if err != nil {
		return 0, err
	}
	return n, nil
}
