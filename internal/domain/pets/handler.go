package pets

import (
	"net/http"

	"pet-care/internal/middleware"
	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/httpjson"
	"pet-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/all", listPetsHandler(svc, log))
		pr.Post("/add", addPetHandler(svc, log))
	})
}

type addPetRequest struct {
	Name         string  `json:"newPetName"`
	Type         string  `json:"newPetType"`
	Breed        string  `json:"newPetBreed"`
	Gender       string  `json:"newPetGender"`
	Age          string  `json:"newPetAge"`
	Weight       string  `json:"newPetWeight"`
	HealthStatus string  `json:"newPetHealthStatus"`
	Allergies    *string `json:"newPetAllergies"` // opcional, default "None"
	Vet          *string `json:"newPetVet"`       // opcional, default ""
}

// petSummary es lo que consume el selector de mascotas del front.
type petSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type addPetResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listPetsHandler godoc
// @Summary Listar mascotas del usuario
// @Description Devuelve {id, name} de las mascotas del acting user.
// @Tags pets
// @Produce json
// @Success 200 {array} petSummary
// @Failure 401 {object} errorResponse "User not logged in"
// @Router /pets/all [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.ActingUserID(r.Context())
		if !ok {
			httpjson.WriteError(w, http.StatusUnauthorized, "User not logged in")
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			log.Error("list pets failed", map[string]any{"user_id": userID, "error": err.Error()})
			httpjson.Fail(w, err)
			return
		}

		out := make([]petSummary, 0, len(items))
		for _, p := range items {
			out = append(out, petSummary{ID: p.ID, Name: p.Name})
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

// addPetHandler godoc
// @Summary Alta de mascota
// @Description Registra una mascota para el acting user. newPetAllergies default "None", newPetVet default "".
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body addPetRequest true "Perfil de la mascota"
// @Success 201 {object} addPetResponse
// @Failure 400 {object} errorResponse "Missing required fields"
// @Failure 401 {object} errorResponse "User not logged in"
// @Failure 500 {object} errorResponse "error de store"
// @Router /pets/add [post]
func addPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.ActingUserID(r.Context())
		if !ok {
			httpjson.WriteError(w, http.StatusUnauthorized, "User not logged in")
			return
		}

		var req addPetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Fail(w, err)
			return
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:         req.Name,
			Type:         req.Type,
			Breed:        req.Breed,
			Gender:       req.Gender,
			Age:          req.Age,
			Weight:       req.Weight,
			HealthStatus: req.HealthStatus,
			Allergies:    req.Allergies,
			VetName:      req.Vet,
		})
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.Error("add pet failed", map[string]any{"user_id": userID, "error": err.Error()})
			}
			httpjson.Fail(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, addPetResponse{Message: "Pet added successfully", ID: p.ID})
	}
}
