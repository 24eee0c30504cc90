package pets

// DefaultAllergies se usa cuando el alta no informa alergias.
const DefaultAllergies = "None"

// Pet es el perfil de una mascota; pertenece a exactamente un usuario.
// Age y Weight son texto libre ("2 years", "28 kg").
type Pet struct {
	ID     int64
	UserID int64

	Name         string
	Type         string
	Breed        string
	Gender       string
	Age          string
	Weight       string
	HealthStatus string
	Allergies    string
	VetName      string
}
