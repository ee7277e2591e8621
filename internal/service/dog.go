package service

import (
	"context"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type dogService struct {
	dogRepo repository.DogRepository
}

func NewDogService(dogRepo repository.DogRepository) DogService {
	return &dogService{dogRepo: dogRepo}
}

func (s *dogService) CreateDog(ctx context.Context, actor domain.Identity, dog *domain.Dog) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if dog.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if dog.Age < 0 {
		return domain.NewValidationError("age", "must not be negative")
	}
	return s.dogRepo.Create(ctx, dog)
}

func (s *dogService) GetDog(ctx context.Context, dogID int32) (*domain.Dog, error) {
	return s.dogRepo.GetByID(ctx, dogID)
}

func (s *dogService) ListDogs(ctx context.Context) ([]domain.Dog, error) {
	return s.dogRepo.List(ctx)
}
