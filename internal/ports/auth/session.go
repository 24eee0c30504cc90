package auth

import "net/http"

// SessionResolver resuelve el acting user de un request y establece la sesión tras un login.
type SessionResolver interface {
	// Resolve devuelve false si el request no trae una sesión válida.
	Resolve(r *http.Request) (Claims, bool)

	// Establish registra la sesión de c. Devuelve el token emitido ("" si el modo no usa tokens).
	Establish(w http.ResponseWriter, c Claims) (string, error)
}
