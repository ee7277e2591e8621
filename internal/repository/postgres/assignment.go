package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) AssignDogs(ctx context.Context, sessionID, walkerID int32, dogIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The walker must be checked in before dogs can be handed over.
	var checkedIn bool
	err = tx.QueryRowContext(ctx,
		`SELECT checked_in FROM bookings WHERE session_id = $1 AND walker_id = $2 FOR UPDATE`,
		sessionID, walkerID).Scan(&checkedIn)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !checkedIn {
		return domain.ErrInvalidState
	}

	query := `INSERT INTO dog_assignments (session_id, walker_id, dog_id)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (session_id, walker_id, dog_id) DO NOTHING`
	for _, dogID := range dogIDs {
		if _, err := tx.ExecContext(ctx, query, sessionID, walkerID, dogID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *assignmentRepository) ListBySession(ctx context.Context, sessionID int32) ([]domain.Assignment, error) {
	query := `SELECT session_id, walker_id, dog_id FROM dog_assignments WHERE session_id = $1`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.SessionID, &a.WalkerID, &a.DogID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
