package appointments

import (
	"net/http"

	"pet-care/internal/middleware"
	"pet-care/internal/platform/apperr"
	"pet-care/internal/platform/httpjson"
	"pet-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc, log))
		ar.Post("/schedule", scheduleHandler(svc, log))
	})
}

type scheduleRequest struct {
	PetID             *int64 `json:"petId"`   // preferido
	PetInfo           string `json:"petInfo"` // legacy: "Nombre - Raza"
	DoctorName        string `json:"doctorName"`
	HospitalName      string `json:"hospitalName"`
	AppointmentDate   string `json:"appointmentDate"`
	AppointmentTime   string `json:"appointmentTime"`
	AppointmentReason string `json:"appointmentReason"`
}

// appointmentResponse devuelve todas las columnas, con los nombres de columna como keys.
type appointmentResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	PetID        int64  `json:"pet_id"`
	DoctorName   string `json:"doctor_name"`
	HospitalName string `json:"hospital_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
	Status       Status `json:"status"`
}

type scheduleResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// scheduleHandler godoc
// @Summary Agendar turno veterinario
// @Description Crea un turno con status "Upcoming". La mascota se resuelve por `petId` o, si no viene, por el nombre antes del primer " - " en `petInfo` (primer match del usuario).
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body scheduleRequest true "Datos del turno"
// @Success 201 {object} scheduleResponse
// @Failure 400 {object} errorResponse "Missing required fields"
// @Failure 401 {object} errorResponse "User not logged in"
// @Failure 404 {object} errorResponse "Selected pet not found in user records"
// @Router /appointments/schedule [post]
func scheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.ActingUserID(r.Context())
		if !ok {
			httpjson.WriteError(w, http.StatusUnauthorized, "User not logged in")
			return
		}

		var req scheduleRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Fail(w, err)
			return
		}

		a, err := svc.Schedule(r.Context(), userID, ScheduleInput{
			PetID:        req.PetID,
			PetInfo:      req.PetInfo,
			DoctorName:   req.DoctorName,
			HospitalName: req.HospitalName,
			Date:         req.AppointmentDate,
			Time:         req.AppointmentTime,
			Reason:       req.AppointmentReason,
		})
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.Error("schedule appointment failed", map[string]any{"user_id": userID, "error": err.Error()})
			}
			httpjson.Fail(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, scheduleResponse{Message: "Appointment scheduled successfully", ID: a.ID})
	}
}

// listAppointmentsHandler godoc
// @Summary Listar turnos del usuario
// @Description Todas las columnas, ordenadas por date DESC, time DESC (orden de strings).
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 401 {object} errorResponse "User not logged in"
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.ActingUserID(r.Context())
		if !ok {
			httpjson.WriteError(w, http.StatusUnauthorized, "User not logged in")
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			log.Error("list appointments failed", map[string]any{"user_id": userID, "error": err.Error()})
			httpjson.Fail(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		PetID:        a.PetID,
		DoctorName:   a.DoctorName,
		HospitalName: a.HospitalName,
		Date:         a.Date,
		Time:         a.Time,
		Reason:       a.Reason,
		Status:       a.Status,
	}
}
