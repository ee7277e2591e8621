package domain

type DogStatus string

const (
	DogStatusAvailable DogStatus = "AVAILABLE"
	DogStatusPending   DogStatus = "PENDING"
	DogStatusAdopted   DogStatus = "ADOPTED"
)

type Dog struct {
	ID     int32     `json:"id"`
	Name   string    `json:"name"`
	Breed  string    `json:"breed"`
	Age    int32     `json:"age"`
	Status DogStatus `json:"status"`
}
