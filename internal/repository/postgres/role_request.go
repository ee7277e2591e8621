package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type roleRequestRepository struct {
	db *sql.DB
}

func NewRoleRequestRepository(db *sql.DB) repository.RoleRequestRepository {
	return &roleRequestRepository{db: db}
}

func (r *roleRequestRepository) GetByUser(ctx context.Context, userID int32) (*domain.RoleRequest, error) {
	req := &domain.RoleRequest{}
	var status sql.NullString
	query := `SELECT id, name, role_request_status, COALESCE(role_request_reason, ''), role_requested_on, role_request_processed_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&req.UserID, &req.UserName, &status, &req.Reason, &req.RequestedOn, &req.ProcessedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if status.Valid {
		req.Status = domain.RequestStatus(status.String)
	}
	return req, nil
}

func (r *roleRequestRepository) ListPending(ctx context.Context) ([]domain.RoleRequest, error) {
	query := `SELECT id, name, role_request_status, COALESCE(role_request_reason, ''), role_requested_on, role_request_processed_on
	          FROM users WHERE role_request_status = $1 ORDER BY role_requested_on`
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RoleRequest
	for rows.Next() {
		var req domain.RoleRequest
		if err := rows.Scan(&req.UserID, &req.UserName, &req.Status, &req.Reason, &req.RequestedOn, &req.ProcessedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Submit is a single conditional UPDATE, so the "no pending request"
// check and the write cannot interleave with a concurrent submit.
func (r *roleRequestRepository) Submit(ctx context.Context, userID int32, reason string, deniedCutoff time.Time) error {
	query := `UPDATE users
	          SET role_request_status = $2, role_request_reason = $3, role_requested_on = $4, role_request_processed_on = NULL
	          WHERE id = $1
	            AND role_request_status IS DISTINCT FROM $5
	            AND role_request_status IS DISTINCT FROM $6
	            AND (role_request_status IS DISTINCT FROM $7 OR role_request_processed_on <= $8)`
	result, err := r.db.ExecContext(ctx, query, userID,
		domain.RequestStatusPending, reason, time.Now(),
		domain.RequestStatusPending, domain.RequestStatusApproved, domain.RequestStatusDenied, deniedCutoff)
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
	return nil
}

func (r *roleRequestRepository) Decide(ctx context.Context, userID int32, approve bool, processedOn time.Time) error {
	var query string
	var status domain.RequestStatus
	if approve {
		// Promotion and request resolution are one statement: a crash
		// cannot leave the request approved but the role unchanged.
		query = `UPDATE users SET role = $2, role_request_status = $3, role_request_processed_on = $4
		         WHERE id = $1 AND role_request_status = $5`
		status = domain.RequestStatusApproved
		result, err := r.db.ExecContext(ctx, query, userID, domain.RoleMarshal, status, processedOn, domain.RequestStatusPending)
		return checkDecided(result, err)
	}
	query = `UPDATE users SET role_request_status = $2, role_request_processed_on = $3
	         WHERE id = $1 AND role_request_status = $4`
	status = domain.RequestStatusDenied
	result, err := r.db.ExecContext(ctx, query, userID, status, processedOn, domain.RequestStatusPending)
	return checkDecided(result, err)
}

func (r *roleRequestRepository) Clear(ctx context.Context, userID int32) error {
	query := `UPDATE users
	          SET role = $2, role_request_status = NULL, role_request_reason = NULL,
	              role_requested_on = NULL, role_request_processed_on = NULL
	          WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, userID, domain.RoleWalker)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func checkDecided(result sql.Result, err error) error {
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
	return nil
}
