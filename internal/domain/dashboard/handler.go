package dashboard

import (
	"net/http"

	"pet-care/internal/middleware"
	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/httpjson"
	"pet-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/dashboard/stats", statsHandler(svc, log))
}

type statsResponse struct {
	UserName             string `json:"user_name"`
	RegisteredPets       int    `json:"registered_pets"`
	UpcomingAppointments int    `json:"upcoming_appointments"`
	AvailableAdoption    int    `json:"available_adoption"`
	HealthRecords        int    `json:"health_records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// statsHandler godoc
// @Summary Estadísticas del dashboard
// @Description Nombre del usuario, cantidad de mascotas, turnos "Upcoming", publicaciones "Available" (global) y health_records fijo.
// @Tags dashboard
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 401 {object} errorResponse "User not logged in"
// @Router /dashboard/stats [get]
func statsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.ActingUserID(r.Context())
		if !ok {
			httpjson.WriteError(w, http.StatusUnauthorized, "User not logged in")
			return
		}

		st, err := svc.Stats(r.Context(), userID)
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.Error("dashboard stats failed", map[string]any{"user_id": userID, "error": err.Error()})
			}
			httpjson.Fail(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, statsResponse{
			UserName:             st.UserName,
			RegisteredPets:       st.RegisteredPets,
			UpcomingAppointments: st.UpcomingAppointments,
			AvailableAdoption:    st.AvailableAdoption,
			HealthRecords:        st.HealthRecords,
		})
	}
}
