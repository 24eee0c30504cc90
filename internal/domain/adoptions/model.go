package adoptions

type Status string

const (
	StatusAvailable Status = "Available"
	StatusAdopted   Status = "Adopted"
)

// Listing es una publicación de adopción. No referencia usuarios ni mascotas,
// aunque describa al mismo animal.
type Listing struct {
	ID           int64
	Name         string
	Breed        string
	Gender       string
	Age          string
	Status       Status
	Shelter      string
	ContactPhone string
}
