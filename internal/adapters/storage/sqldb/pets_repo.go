package sqldb

import (
	"context"

	"pet-care/internal/domain/pets"
)

type petRow struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"`
	Name         string `db:"name"`
	Type         string `db:"type"`
	Breed        string `db:"breed"`
	Gender       string `db:"gender"`
	Age          string `db:"age"`
	Weight       string `db:"weight"`
	HealthStatus string `db:"health_status"`
	Allergies    string `db:"allergies"`
	VetName      string `db:"vet_name"`
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Type:         r.Type,
		Breed:        r.Breed,
		Gender:       r.Gender,
		Age:          r.Age,
		Weight:       r.Weight,
		HealthStatus: r.HealthStatus,
		Allergies:    r.Allergies,
		VetName:      r.VetName,
	}
}

const petColumns = `
	id, user_id, name, type,
	COALESCE(breed, '') AS breed,
	COALESCE(gender, '') AS gender,
	COALESCE(age, '') AS age,
	COALESCE(weight, '') AS weight,
	COALESCE(health_status, '') AS health_status,
	COALESCE(allergies, '') AS allergies,
	COALESCE(vet_name, '') AS vet_name`

type PetsRepo struct {
	gw *Gateway
}

func NewPetsRepo(gw *Gateway) *PetsRepo {
	return &PetsRepo{gw: gw}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.gw.Get(ctx, &id, `
		INSERT INTO pets (
			user_id, name, type, breed, gender,
			age, weight, health_status, allergies, vet_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		p.UserID,
		p.Name,
		p.Type,
		p.Breed,
		p.Gender,
		p.Age,
		p.Weight,
		p.HealthStatus,
		p.Allergies,
		nullIfEmpty(p.VetName),
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row petRow
	if err := r.gw.Get(ctx, &row, `SELECT `+petColumns+` FROM pets WHERE id = ?`, id); err != nil {
		return pets.Pet{}, err
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, userID int64) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.gw.Select(ctx, &rows, `SELECT `+petColumns+` FROM pets WHERE user_id = ? ORDER BY id`, userID); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) FindByOwnerAndName(ctx context.Context, userID int64, name string) (pets.Pet, error) {
	var row petRow
	err := r.gw.Get(ctx, &row, `
		SELECT `+petColumns+`
		FROM pets
		WHERE user_id = ? AND name = ?
		ORDER BY id
		LIMIT 1
	`, userID, name)
	if err != nil {
		return pets.Pet{}, err
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) CountByOwner(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.gw.Get(ctx, &n, `SELECT COUNT(*) FROM pets WHERE user_id = ?`, userID); err != nil {
		return 0, err
	}
	return n, nil
}
