package middleware

import (
	"context"
	"net/http"

	"pet-care/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext resuelve el acting user con el resolver configurado y lo deja en el contexto.
// Si no hay sesión el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(resolver auth.SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := resolver.Resolve(r)
			if !ok || claims.UserID <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// ActingUserID es el atajo que usan los handlers.
func ActingUserID(ctx context.Context) (int64, bool) {
	c, ok := GetClaims(ctx)
	if !ok || c.UserID <= 0 {
		return 0, false
	}
	return c.UserID, true
}
