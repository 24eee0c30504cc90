package adoptions

import (
	"fmt"
	"net/http"

	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/httpjson"
	"pet-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/adoption/register", registerHandler(svc, log))
}

type registerRequest struct {
	Name    string `json:"adoptionPetName"`
	Breed   string `json:"adoptionPetBreed"`
	Gender  string `json:"adoptionPetGender"`
	Age     string `json:"adoptionPetAge"`
	Shelter string `json:"adoptionShelter"`
	Contact string `json:"adoptionContact"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// registerHandler godoc
// @Summary Publicar mascota en adopción
// @Description Crea una publicación con status "Available". No requiere sesión; la publicación no queda asociada a ningún usuario.
// @Tags adoption
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la publicación"
// @Success 201 {object} registerResponse
// @Failure 400 {object} errorResponse "Missing required fields"
// @Failure 500 {object} errorResponse "Failed to register pet for adoption."
// @Router /adoption/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, apperr.MsgMissingFields)
			return
		}

		l, err := svc.Register(r.Context(), RegisterInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Gender:       req.Gender,
			Age:          req.Age,
			Shelter:      req.Shelter,
			ContactPhone: req.Contact,
		})
		if err != nil {
			if apperr.Status(err) == http.StatusBadRequest {
				httpjson.Fail(w, err)
				return
			}
			// El detalle del store va al log, no al cliente.
			log.Error("database error on adoption registration", map[string]any{"error": err.Error()})
			httpjson.WriteError(w, http.StatusInternalServerError, "Failed to register pet for adoption.")
			return
		}

		httpjson.Write(w, http.StatusCreated, registerResponse{
			Message: fmt.Sprintf("%s registered for adoption successfully!", l.Name),
			ID:      l.ID,
		})
	}
}
