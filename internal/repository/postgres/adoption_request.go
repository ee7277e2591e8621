package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type adoptionRequestRepository struct {
	db *sql.DB
}

func NewAdoptionRequestRepository(db *sql.DB) repository.AdoptionRequestRepository {
	return &adoptionRequestRepository{db: db}
}

const adoptionColumns = `id, user_id, dog_id, status, requested_on, processed_on`

func (r *adoptionRequestRepository) GetByID(ctx context.Context, id int32) (*domain.AdoptionRequest, error) {
	req := &domain.AdoptionRequest{}
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.DogID, &req.Status, &req.RequestedOn, &req.ProcessedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *adoptionRequestRepository) GetLatestByUserAndDog(ctx context.Context, userID, dogID int32) (*domain.AdoptionRequest, error) {
	req := &domain.AdoptionRequest{}
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests
	          WHERE user_id = $1 AND dog_id = $2 ORDER BY requested_on DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, userID, dogID).Scan(&req.ID, &req.UserID, &req.DogID, &req.Status, &req.RequestedOn, &req.ProcessedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *adoptionRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE user_id = $1 ORDER BY requested_on DESC`
	return r.list(ctx, query, userID)
}

func (r *adoptionRequestRepository) ListPending(ctx context.Context) ([]domain.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE status = $1 ORDER BY requested_on`
	return r.list(ctx, query, domain.RequestStatusPending)
}

func (r *adoptionRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.AdoptionRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.AdoptionRequest
	for rows.Next() {
		var req domain.AdoptionRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.DogID, &req.Status, &req.RequestedOn, &req.ProcessedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Submit inserts the pending request and flips the dog to PENDING in
// one transaction. The dog update is conditional on AVAILABLE, which
// also blocks two users requesting the same dog at once.
func (r *adoptionRequestRepository) Submit(ctx context.Context, req *domain.AdoptionRequest, deniedCutoff time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	req.Status = domain.RequestStatusPending
	req.RequestedOn = time.Now()
	insert := `INSERT INTO adoption_requests (user_id, dog_id, status, requested_on)
	           SELECT $1, $2, $3, $4
	           WHERE NOT EXISTS (
	               SELECT 1 FROM adoption_requests
	               WHERE user_id = $1 AND dog_id = $2
	                 AND (status = $5 OR (status = $6 AND processed_on > $7))
	           )
	           RETURNING id`
	err = tx.QueryRowContext(ctx, insert, req.UserID, req.DogID, req.Status, req.RequestedOn,
		domain.RequestStatusPending, domain.RequestStatusDenied, deniedCutoff).Scan(&req.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrInvalidState
	}
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE dogs SET status = $2 WHERE id = $1 AND status = $3`,
		req.DogID, domain.DogStatusPending, domain.DogStatusAvailable)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidState
	}

	return tx.Commit()
}

// Decide resolves the request and applies the dog side effect in one
// transaction: ADOPTED on approval, back to AVAILABLE on denial.
func (r *adoptionRequestRepository) Decide(ctx context.Context, id int32, approve bool, processedOn time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status := domain.RequestStatusDenied
	dogStatus := domain.DogStatusAvailable
	if approve {
		status = domain.RequestStatusApproved
		dogStatus = domain.DogStatusAdopted
	}

	var dogID int32
	update := `UPDATE adoption_requests SET status = $2, processed_on = $3
	           WHERE id = $1 AND status = $4 RETURNING dog_id`
	err = tx.QueryRowContext(ctx, update, id, status, processedOn, domain.RequestStatusPending).Scan(&dogID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrInvalidState
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE dogs SET status = $2 WHERE id = $1`, dogID, dogStatus); err != nil {
		return err
	}

	return tx.Commit()
}
