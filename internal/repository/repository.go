package repository

import (
	"context"
	"time"

	"dogwalk-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type DogRepository interface {
	Create(ctx context.Context, dog *domain.Dog) error
	GetByID(ctx context.Context, id int32) (*domain.Dog, error)
	List(ctx context.Context) ([]domain.Dog, error)
}

type SessionRepository interface {
	// Create inserts a new session unless an identical
	// (marshal, date, time, dog) slot already exists, in which case it
	// returns domain.ErrDuplicateSlot.
	Create(ctx context.Context, s *domain.WalkSession) error
	GetByID(ctx context.Context, id int32) (*domain.WalkSession, error)
	Delete(ctx context.Context, id int32) error

	// List reads return sessions with their bookings embedded.
	ListFromDate(ctx context.Context, fromDate string) ([]domain.WalkSession, error)
	ListByMarshalFromDate(ctx context.Context, marshalID int32, fromDate string) ([]domain.WalkSession, error)
	ListByWalkerFromDate(ctx context.Context, walkerID int32, fromDate string) ([]domain.WalkSession, error)
	ListEndedBefore(ctx context.Context, date string) ([]domain.WalkSession, error)
	ListOnDate(ctx context.Context, date string) ([]domain.WalkSession, error)

	// CreateBooking runs the admission-control transaction: the session
	// row is locked, the active booking count is evaluated under that
	// lock, and the insert only happens while the count is below
	// capacity. Returns domain.ErrSessionFull at capacity and
	// domain.ErrInvalidState if the walker already booked this session.
	CreateBooking(ctx context.Context, b *domain.Booking, capacity int) error
	SetCheckIn(ctx context.Context, sessionID, walkerID int32, checkedIn bool) error
}

type AssignmentRepository interface {
	// AssignDogs upserts (session, walker, dog) triples with set
	// semantics; duplicates are ignored. The owning booking must be
	// checked in or domain.ErrInvalidState is returned.
	AssignDogs(ctx context.Context, sessionID, walkerID int32, dogIDs []int32) error
	ListBySession(ctx context.Context, sessionID int32) ([]domain.Assignment, error)
}

type ReportRepository interface {
	// FinalizeSession atomically snapshots every (walker, dog) pair of
	// the session into walk_reports and deletes the session. Returns
	// the number of report rows written, domain.ErrNotFound if the
	// session is gone, domain.ErrInvalidState if it has no bookings.
	FinalizeSession(ctx context.Context, sessionID int32) (int64, error)
	List(ctx context.Context) ([]domain.WalkReport, error)
	Delete(ctx context.Context, id int32) error
	DeleteAll(ctx context.Context) (int64, error)
}

type RoleRequestRepository interface {
	GetByUser(ctx context.Context, userID int32) (*domain.RoleRequest, error)
	ListPending(ctx context.Context) ([]domain.RoleRequest, error)

	// Submit flips the user's role-request columns to PENDING. The
	// update is conditional on the columns not already being PENDING or
	// APPROVED and on any denial being older than deniedCutoff, so the
	// check and the write are one atomic statement.
	Submit(ctx context.Context, userID int32, reason string, deniedCutoff time.Time) error

	// Decide resolves a pending request. Approval also promotes the
	// user to MARSHAL in the same statement.
	Decide(ctx context.Context, userID int32, approve bool, processedOn time.Time) error

	// Clear demotes the user back to WALKER and resets every
	// role-request column.
	Clear(ctx context.Context, userID int32) error
}

type AdoptionRequestRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.AdoptionRequest, error)
	GetLatestByUserAndDog(ctx context.Context, userID, dogID int32) (*domain.AdoptionRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.AdoptionRequest, error)
	ListPending(ctx context.Context) ([]domain.AdoptionRequest, error)

	// Submit inserts a PENDING request and flips the dog to PENDING in
	// one transaction. The insert is guarded against an existing
	// pending row and against denials newer than deniedCutoff.
	Submit(ctx context.Context, req *domain.AdoptionRequest, deniedCutoff time.Time) error

	// Decide resolves a pending request and applies the dog side
	// effect (ADOPTED on approve, back to AVAILABLE on deny) in one
	// transaction.
	Decide(ctx context.Context, id int32, approve bool, processedOn time.Time) error
}
