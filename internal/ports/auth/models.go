package auth

// Claims representa la identidad resuelta para un request (acting user).
type Claims struct {
	UserID int64
	Email  string
}
