package session

import (
	"net/http"
	"sync"

	"pet-care/internal/ports/auth"
)

// DemoUserID es el usuario activo al arrancar en modo compartido (el usuario sembrado).
const DemoUserID int64 = 1

// SharedResolver guarda una única identidad para todo el proceso: el último login
// exitoso gana y aplica a todos los clientes. Solo para demo/single-user.
type SharedResolver struct {
	mu      sync.RWMutex
	current auth.Claims
}

func NewSharedResolver(initialUserID int64) *SharedResolver {
	return &SharedResolver{current: auth.Claims{UserID: initialUserID}}
}

func (s *SharedResolver) Resolve(*http.Request) (auth.Claims, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.UserID <= 0 {
		return auth.Claims{}, false
	}
	return s.current, true
}

func (s *SharedResolver) Establish(_ http.ResponseWriter, c auth.Claims) (string, error) {
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
	return "", nil
}
