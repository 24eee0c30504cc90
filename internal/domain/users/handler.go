package users

import (
	"net/http"

	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/httpjson"
	"pet-care/internal/platform/logger"
	"pet-care/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions auth.SessionResolver, log logger.Logger) {
	r.Post("/signup", signupHandler(svc, log))
	r.Post("/login", loginHandler(svc, sessions, log))
}

type signupRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	SignupPassword string `json:"signupPassword"`
	Phone          string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// signupHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta. El email es único; el password se guarda como hash bcrypt.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos de registro"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorResponse "Missing required fields"
// @Failure 409 {object} errorResponse "Email already exists"
// @Failure 500 {object} errorResponse "error de store (diagnóstico)"
// @Router /signup [post]
func signupHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Fail(w, err)
			return
		}

		u, err := svc.Signup(r.Context(), SignupInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.SignupPassword,
			Phone:     req.Phone,
		})
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.Error("signup failed", map[string]any{"error": err.Error()})
			}
			httpjson.Fail(w, err)
			return
		}

		log.Info("user created", map[string]any{"user_id": u.ID})
		httpjson.Write(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Verifica email + password y establece la sesión. En modo token devuelve el token y setea la cookie `petcare_session`; en modo shared cambia el acting user de todo el proceso.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse "Missing required fields"
// @Failure 401 {object} errorResponse "Invalid email or password"
// @Router /login [post]
func loginHandler(svc *Service, sessions auth.SessionResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Fail(w, err)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.Error("login failed", map[string]any{"error": err.Error()})
			}
			httpjson.Fail(w, err)
			return
		}

		var token string
		if sessions != nil {
			token, err = sessions.Establish(w, auth.Claims{UserID: u.ID, Email: u.Email})
		}
		if err != nil {
			log.Error("establish session failed", map[string]any{"user_id": u.ID, "error": err.Error()})
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{
			Message: "Login successful",
			UserID:  u.ID,
			Token:   token,
		})
	}
}
