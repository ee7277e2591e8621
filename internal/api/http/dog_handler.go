package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/service"
)

type DogHandler struct {
	dogs service.DogService
}

func NewDogHandler(dogs service.DogService) *DogHandler {
	return &DogHandler{dogs: dogs}
}

type createDogRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int32  `json:"age"`
}

func (h *DogHandler) CreateDog(w http.ResponseWriter, r *http.Request) {
	actor, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	var req createDogRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	dog := &domain.Dog{Name: req.Name, Breed: req.Breed, Age: req.Age}
	if err := h.dogs.CreateDog(r.Context(), actor, dog); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dog)
}

func (h *DogHandler) GetDog(w http.ResponseWriter, r *http.Request) {
	dogID, err := pathID(r, mux.Vars(r), "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	dog, err := h.dogs.GetDog(r.Context(), dogID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dog)
}

func (h *DogHandler) ListDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.dogs.ListDogs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if dogs == nil {
		dogs = []domain.Dog{}
	}
	writeJSON(w, http.StatusOK, dogs)
}
