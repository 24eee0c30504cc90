package sqldb

import (
	"context"

	"pet-care/internal/domain/adoptions"
)

type adoptionRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Breed        string `db:"breed"`
	Gender       string `db:"gender"`
	Age          string `db:"age"`
	Status       string `db:"status"`
	Shelter      string `db:"shelter"`
	ContactPhone string `db:"contact_phone"`
}

func (r adoptionRow) toDomain() adoptions.Listing {
	return adoptions.Listing{
		ID:           r.ID,
		Name:         r.Name,
		Breed:        r.Breed,
		Gender:       r.Gender,
		Age:          r.Age,
		Status:       adoptions.Status(r.Status),
		Shelter:      r.Shelter,
		ContactPhone: r.ContactPhone,
	}
}

type AdoptionsRepo struct {
	gw *Gateway
}

func NewAdoptionsRepo(gw *Gateway) *AdoptionsRepo {
	return &AdoptionsRepo{gw: gw}
}

func (r *AdoptionsRepo) Create(ctx context.Context, l adoptions.Listing) (int64, error) {
	var id int64
	err := r.gw.Get(ctx, &id, `
		INSERT INTO adoptions (name, breed, gender, age, status, shelter, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
		l.Name,
		l.Breed,
		l.Gender,
		l.Age,
		string(l.Status),
		l.Shelter,
		l.ContactPhone,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AdoptionsRepo) FindByNameAndShelter(ctx context.Context, name, shelter string) (adoptions.Listing, error) {
	var row adoptionRow
	err := r.gw.Get(ctx, &row, `
		SELECT id, name, breed,
			COALESCE(gender, '') AS gender,
			COALESCE(age, '') AS age,
			COALESCE(status, '') AS status,
			COALESCE(shelter, '') AS shelter,
			COALESCE(contact_phone, '') AS contact_phone
		FROM adoptions
		WHERE name = ? AND shelter = ?
		ORDER BY id
		LIMIT 1
	`, name, shelter)
	if err != nil {
		return adoptions.Listing{}, err
	}
	return row.toDomain(), nil
}

func (r *AdoptionsRepo) CountByStatus(ctx context.Context, status adoptions.Status) (int, error) {
	var n int
	if err := r.gw.Get(ctx, &n, `SELECT COUNT(*) FROM adoptions WHERE status = ?`, string(status)); err != nil {
		return 0, err
	}
	return n, nil
}
