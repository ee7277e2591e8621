package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, role) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.Role).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	var status sql.NullString
	query := `SELECT id, name, email, role, role_request_status, COALESCE(role_request_reason, ''), role_requested_on, role_request_processed_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role,
		&status, &user.RoleRequestReason, &user.RoleRequestedOn, &user.RoleRequestProcessedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if status.Valid {
		user.RoleRequestStatus = domain.RequestStatus(status.String)
	}
	return user, nil
}
