package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// FinalizeSession snapshots the session into walk_reports and removes
// it, all inside one transaction. A concurrent cancel makes the lock
// query come back empty and the caller sees ErrNotFound.
func (r *reportRepository) FinalizeSession(ctx context.Context, sessionID int32) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var lockedID int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM walk_sessions WHERE id = $1 FOR UPDATE`, sessionID).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	insert := `INSERT INTO walk_reports (walk_date, walk_time, walker_name, marshal_name, dog_name, check_in_status, created_on)
	           SELECT to_char(s.walk_date, 'YYYY-MM-DD'), s.walk_time, w.name, m.name, d.name,
	                  CASE WHEN b.checked_in THEN 'Checked In' ELSE 'Not Checked In' END, $2
	           FROM bookings b
	           JOIN walk_sessions s ON s.id = b.session_id
	           JOIN users w ON w.id = b.walker_id
	           JOIN users m ON m.id = s.marshal_id
	           LEFT JOIN dog_assignments a ON a.session_id = b.session_id AND a.walker_id = b.walker_id
	           LEFT JOIN dogs d ON d.id = a.dog_id
	           WHERE b.session_id = $1`
	result, err := tx.ExecContext(ctx, insert, sessionID, time.Now())
	if err != nil {
		return 0, err
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if inserted == 0 {
		// Nothing to report: the session never had a booking. Leave it
		// alone rather than silently deleting it.
		return 0, domain.ErrInvalidState
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM walk_sessions WHERE id = $1`, sessionID); err != nil {
		return 0, err
	}

	return inserted, tx.Commit()
}

func (r *reportRepository) List(ctx context.Context) ([]domain.WalkReport, error) {
	query := `SELECT id, walk_date, walk_time, walker_name, marshal_name, dog_name, check_in_status, created_on
	          FROM walk_reports ORDER BY walk_date DESC, walk_time DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.WalkReport
	for rows.Next() {
		var rep domain.WalkReport
		if err := rows.Scan(&rep.ID, &rep.WalkDate, &rep.WalkTime, &rep.WalkerName, &rep.MarshalName, &rep.DogName, &rep.CheckInStatus, &rep.CreatedOn); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM walk_reports WHERE id = $1`, id)
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

func (r *reportRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM walk_reports`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
