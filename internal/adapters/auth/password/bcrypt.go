package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt sólo mira los primeros 72 bytes y rechaza entradas más largas.
const maxBcryptInput = 72

// BcryptHasher implementa users.PasswordHasher.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prepare(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify compara contra el hash guardado. Filas viejas guardan la contraseña en
// texto plano; esas se comparan en tiempo constante.
func (h *BcryptHasher) Verify(stored, plain string) bool {
	if !isBcrypt(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
	}

	return bcrypt.CompareHashAndPassword([]byte(stored), prepare(plain)) == nil
}

// prepare deja pasar las contraseñas que entran en bcrypt; las más largas se
// reducen a base64(sha256) (44 bytes) para que cuente la contraseña entera.
func prepare(plain string) []byte {
	if len(plain) <= maxBcryptInput {
		return []byte(plain)
	}
	sum := sha256.Sum256([]byte(plain))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
