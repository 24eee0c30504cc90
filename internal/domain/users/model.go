package users

// User es la identidad registrada. No se modifica ni se borra después del signup.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string // único

	// PasswordHash guarda bcrypt; filas legacy pueden traer texto plano (ver PasswordHasher).
	PasswordHash string

	Phone string
}
