package postgres

import (
	"database/sql"

	"dogwalk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DogRepository
	repository.SessionRepository
	repository.AssignmentRepository
	repository.ReportRepository
	repository.RoleRequestRepository
	repository.AdoptionRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		DogRepository:             NewDogRepository(db),
		SessionRepository:         NewSessionRepository(db),
		AssignmentRepository:      NewAssignmentRepository(db),
		ReportRepository:          NewReportRepository(db),
		RoleRequestRepository:     NewRoleRequestRepository(db),
		AdoptionRequestRepository: NewAdoptionRequestRepository(db),
	}
}
