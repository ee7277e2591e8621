package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository"

	"github.com/lib/pq"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.WalkSession) error {
	// Conditional insert: the NOT EXISTS guard and the insert are one
	// statement, so two racing opens of the same slot cannot both land.
	query := `INSERT INTO walk_sessions (marshal_id, walk_date, walk_time, dog_id, created_on)
	          SELECT $1, $2, $3, $4, $5
	          WHERE NOT EXISTS (
	              SELECT 1 FROM walk_sessions
	              WHERE marshal_id = $1 AND walk_date = $2 AND walk_time = $3 AND dog_id IS NOT DISTINCT FROM $4
	          )
	          RETURNING id`
	s.CreatedOn = time.Now()
	err := r.db.QueryRowContext(ctx, query, s.MarshalID, s.WalkDate, s.WalkTime, s.DogID, s.CreatedOn).Scan(&s.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrDuplicateSlot
	}
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id int32) (*domain.WalkSession, error) {
	s := &domain.WalkSession{}
	query := `SELECT id, marshal_id, to_char(walk_date, 'YYYY-MM-DD'), walk_time, dog_id, created_on
	          FROM walk_sessions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.MarshalID, &s.WalkDate, &s.WalkTime, &s.DogID, &s.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int32) error {
	// Bookings and assignments go with it via ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, `DELETE FROM walk_sessions WHERE id = $1`, id)
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

const sessionColumns = `id, marshal_id, to_char(walk_date, 'YYYY-MM-DD'), walk_time, dog_id, created_on`

func (r *sessionRepository) ListFromDate(ctx context.Context, fromDate string) ([]domain.WalkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM walk_sessions WHERE walk_date >= $1 ORDER BY walk_date, walk_time`
	return r.list(ctx, query, fromDate)
}

func (r *sessionRepository) ListByMarshalFromDate(ctx context.Context, marshalID int32, fromDate string) ([]domain.WalkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM walk_sessions WHERE marshal_id = $1 AND walk_date >= $2 ORDER BY walk_date, walk_time`
	return r.list(ctx, query, marshalID, fromDate)
}

func (r *sessionRepository) ListByWalkerFromDate(ctx context.Context, walkerID int32, fromDate string) ([]domain.WalkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM walk_sessions
	          WHERE walk_date >= $2 AND id IN (SELECT session_id FROM bookings WHERE walker_id = $1)
	          ORDER BY walk_date, walk_time`
	return r.list(ctx, query, walkerID, fromDate)
}

func (r *sessionRepository) ListEndedBefore(ctx context.Context, date string) ([]domain.WalkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM walk_sessions WHERE walk_date < $1 ORDER BY walk_date, walk_time`
	return r.list(ctx, query, date)
}

func (r *sessionRepository) ListOnDate(ctx context.Context, date string) ([]domain.WalkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM walk_sessions WHERE walk_date = $1 ORDER BY walk_time`
	return r.list(ctx, query, date)
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.WalkSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.WalkSession
	var ids []int32
	for rows.Next() {
		var s domain.WalkSession
		if err := rows.Scan(&s.ID, &s.MarshalID, &s.WalkDate, &s.WalkTime, &s.DogID, &s.CreatedOn); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	bookings, err := r.bookingsBySessions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Bookings = bookings[sessions[i].ID]
	}
	return sessions, nil
}

func (r *sessionRepository) bookingsBySessions(ctx context.Context, sessionIDs []int32) (map[int32][]domain.Booking, error) {
	query := `SELECT id, session_id, walker_id, dog_name, start_time, end_time, checked_in, created_on
	          FROM bookings WHERE session_id = ANY($1) ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(sessionIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bysession := make(map[int32][]domain.Booking)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.SessionID, &b.WalkerID, &b.DogName, &b.StartTime, &b.EndTime, &b.CheckedIn, &b.CreatedOn); err != nil {
			return nil, err
		}
		bysession[b.SessionID] = append(bysession[b.SessionID], b)
	}
	return bysession, rows.Err()
}

func (r *sessionRepository) CreateBooking(ctx context.Context, b *domain.Booking, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the session row so concurrent admissions serialize on it.
	var sessionID int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM walk_sessions WHERE id = $1 FOR UPDATE`, b.SessionID).Scan(&sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	var total, mine int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE walker_id = $2) FROM bookings WHERE session_id = $1`,
		b.SessionID, b.WalkerID).Scan(&total, &mine)
	if err != nil {
		return err
	}
	if mine > 0 {
		return domain.ErrInvalidState
	}
	if total >= capacity {
		return domain.ErrSessionFull
	}

	b.CheckedIn = false
	b.CreatedOn = time.Now()
	query := `INSERT INTO bookings (session_id, walker_id, dog_name, start_time, end_time, checked_in, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, b.SessionID, b.WalkerID, b.DogName, b.StartTime, b.EndTime, b.CheckedIn, b.CreatedOn).Scan(&b.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *sessionRepository) SetCheckIn(ctx context.Context, sessionID, walkerID int32, checkedIn bool) error {
	query := `UPDATE bookings SET checked_in = $1 WHERE session_id = $2 AND walker_id = $3`
	result, err := r.db.ExecContext(ctx, query, checkedIn, sessionID, walkerID)
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
