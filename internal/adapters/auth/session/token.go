package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "petcare_session"

var (
	ErrTokenEmpty  = errors.New("token is empty")
	ErrEmptySecret = errors.New("session secret is empty")
)

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenResolver emite y valida tokens HS256 por cliente. Cada login es independiente:
// la identidad de un cliente no afecta a los demás.
type TokenResolver struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenResolver(secret string, ttl time.Duration) (*TokenResolver, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenResolver{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Resolve acepta "Authorization: Bearer <token>" o la cookie de sesión.
func (t *TokenResolver) Resolve(r *http.Request) (auth.Claims, bool) {
	token := bearerToken(r)
	if token == "" {
		if c, err := r.Cookie(CookieName); err == nil {
			token = strings.TrimSpace(c.Value)
		}
	}

	claims, err := t.Verify(token)
	if err != nil {
		return auth.Claims{}, false
	}
	return claims, true
}

func (t *TokenResolver) Establish(w http.ResponseWriter, c auth.Claims) (string, error) {
	token, err := t.Issue(c)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(t.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

func (t *TokenResolver) Issue(c auth.Claims) (string, error) {
	now := t.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(c.UserID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})

	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (t *TokenResolver) Verify(token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify session token: %w", err)
	}

	id, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil || id <= 0 {
		return auth.Claims{}, errors.New("session token missing user id")
	}
	return auth.Claims{UserID: id, Email: tc.Email}, nil
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
