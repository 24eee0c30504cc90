// Package httpjson junta los helpers de request/response JSON que antes estaban duplicados
// en cada módulo de dominio.
package httpjson

import (
	"encoding/json"
	"net/http"

	"pet-care/internal/platform/apperr"
)

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError escribe siempre {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Fail mapea err al status de apperr.
func Fail(w http.ResponseWriter, err error) {
	WriteError(w, apperr.Status(err), apperr.Message(err))
}

// Decode lee el body JSON. Un body vacío o inválido, o un campo con tipo distinto de
// string, cuenta como campos faltantes.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.Validation(apperr.MsgMissingFields)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(apperr.MsgMissingFields)
	}
	return nil
}
