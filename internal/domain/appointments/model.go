package appointments

type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusCompleted Status = "Completed"
)

// Appointment es una visita al veterinario. Date y Time son texto ("2024-05-01", "10:30");
// el orden de listado es lexicográfico, no de calendario.
type Appointment struct {
	ID     int64
	UserID int64
	PetID  int64

	DoctorName   string
	HospitalName string
	Date         string
	Time         string
	Reason       string

	// Status queda en Upcoming al crear; este sistema no lo transiciona.
	Status Status
}
