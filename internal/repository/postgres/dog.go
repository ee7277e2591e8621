package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type dogRepository struct {
	db *sql.DB
}

func NewDogRepository(db *sql.DB) repository.DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Create(ctx context.Context, dog *domain.Dog) error {
	if dog.Status == "" {
		dog.Status = domain.DogStatusAvailable
	}
	query := `INSERT INTO dogs (name, breed, age, status) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, dog.Name, dog.Breed, dog.Age, dog.Status).Scan(&dog.ID)
}

func (r *dogRepository) GetByID(ctx context.Context, id int32) (*domain.Dog, error) {
	dog := &domain.Dog{}
	query := `SELECT id, name, COALESCE(breed, ''), age, status FROM dogs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&dog.ID, &dog.Name, &dog.Breed, &dog.Age, &dog.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return dog, nil
}

func (r *dogRepository) List(ctx context.Context) ([]domain.Dog, error) {
	query := `SELECT id, name, COALESCE(breed, ''), age, status FROM dogs ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []domain.Dog
	for rows.Next() {
		var dog domain.Dog
		if err := rows.Scan(&dog.ID, &dog.Name, &dog.Breed, &dog.Age, &dog.Status); err != nil {
			return nil, err
		}
		dogs = append(dogs, dog)
	}
	return dogs, rows.Err()
}
