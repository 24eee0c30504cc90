package sqldb

import (
	"context"
	"strings"

	"pet-care/internal/domain/users"
)

type userRow struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	Phone     string `db:"phone"`
}

func (r userRow) toDomain() users.User {
	return users.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: r.Password,
		Phone:        r.Phone,
	}
}

const userColumns = `id, first_name, last_name, email, password, COALESCE(phone, '') AS phone`

type UsersRepo struct {
	gw *Gateway
}

func NewUsersRepo(gw *Gateway) *UsersRepo {
	return &UsersRepo{gw: gw}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.gw.Get(ctx, &id, `
		INSERT INTO users (first_name, last_name, email, password, phone)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		nullIfEmpty(u.Phone),
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	var row userRow
	if err := r.gw.Get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id); err != nil {
		return users.User{}, err
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var row userRow
	err := r.gw.Get(ctx, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, strings.TrimSpace(email))
	if err != nil {
		return users.User{}, err
	}
	return row.toDomain(), nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
