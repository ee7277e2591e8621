package service

import (
	"context"
	"fmt"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository"
)

type sessionService struct {
	sessionRepo    repository.SessionRepository
	assignmentRepo repository.AssignmentRepository
	reportRepo     repository.ReportRepository
	dogRepo        repository.DogRepository
	capacity       int
	now            func() time.Time
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	assignmentRepo repository.AssignmentRepository,
	reportRepo repository.ReportRepository,
	dogRepo repository.DogRepository,
	capacity int,
) SessionService {
	if capacity <= 0 {
		capacity = domain.SessionCapacity
	}
	return &sessionService{
		sessionRepo:    sessionRepo,
		assignmentRepo: assignmentRepo,
		reportRepo:     reportRepo,
		dogRepo:        dogRepo,
		capacity:       capacity,
		now:            time.Now,
	}
}

func (s *sessionService) OpenSession(ctx context.Context, actor domain.Identity, walkDate, walkTime string, dogID *int32) (*domain.WalkSession, error) {
	if !actor.IsMarshal() && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if _, err := time.Parse("2006-01-02", walkDate); err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", walkTime); err != nil {
		return nil, domain.NewValidationError("time", "must be HH:MM")
	}
	if dogID != nil {
		if _, err := s.dogRepo.GetByID(ctx, *dogID); err != nil {
			return nil, fmt.Errorf("look up session dog: %w", err)
		}
	}

	session := &domain.WalkSession{
		MarshalID: actor.UserID,
		WalkDate:  walkDate,
		WalkTime:  walkTime,
		DogID:     dogID,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	logger.Info("Walk session opened", "session_id", session.ID, "marshal_id", actor.UserID, "date", walkDate, "time", walkTime)
	return session, nil
}

// ListSessions applies the read-side authorization rule: admins see
// every upcoming session, marshals their own, walkers only sessions
// they are booked into.
func (s *sessionService) ListSessions(ctx context.Context, actor domain.Identity) ([]domain.WalkSession, error) {
	today := s.now().Format("2006-01-02")
	switch actor.Role {
	case domain.RoleAdmin:
		return s.sessionRepo.ListFromDate(ctx, today)
	case domain.RoleMarshal:
		return s.sessionRepo.ListByMarshalFromDate(ctx, actor.UserID, today)
	default:
		return s.sessionRepo.ListByWalkerFromDate(ctx, actor.UserID, today)
	}
}

func (s *sessionService) CancelSession(ctx context.Context, actor domain.Identity, sessionID int32) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		if !actor.IsMarshal() || session.MarshalID != actor.UserID {
			return domain.ErrForbidden
		}
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Info("Walk session cancelled", "session_id", sessionID, "actor_id", actor.UserID)
	return nil
}

func (s *sessionService) BookWalker(ctx context.Context, actor domain.Identity, sessionID int32, dogName, startTime, endTime string) (*domain.Booking, error) {
	if dogName == "" {
		return nil, domain.NewValidationError("dog_name", "must not be empty")
	}
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, domain.NewValidationError("start_time", "must be HH:MM")
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, domain.NewValidationError("end_time", "must be HH:MM")
	}
	if !end.After(start) {
		return nil, domain.NewValidationError("end_time", "must be after start_time")
	}

	booking := &domain.Booking{
		SessionID: sessionID,
		WalkerID:  actor.UserID,
		DogName:   dogName,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if err := s.sessionRepo.CreateBooking(ctx, booking, s.capacity); err != nil {
		return nil, err
	}
	logger.Info("Walker booked into session", "session_id", sessionID, "walker_id", actor.UserID, "booking_id", booking.ID)
	return booking, nil
}

func (s *sessionService) SetCheckIn(ctx context.Context, actor domain.Identity, sessionID, walkerID int32, checkedIn bool) error {
	if !actor.CanManageWalks() {
		return domain.ErrForbidden
	}
	return s.sessionRepo.SetCheckIn(ctx, sessionID, walkerID, checkedIn)
}

func (s *sessionService) AssignDogs(ctx context.Context, actor domain.Identity, sessionID, walkerID int32, dogIDs []int32) error {
	if !actor.CanManageWalks() {
		return domain.ErrForbidden
	}
	if len(dogIDs) == 0 {
		return domain.NewValidationError("dog_ids", "must not be empty")
	}
	for _, dogID := range dogIDs {
		if _, err := s.dogRepo.GetByID(ctx, dogID); err != nil {
			return fmt.Errorf("look up dog %d: %w", dogID, err)
		}
	}
	return s.assignmentRepo.AssignDogs(ctx, sessionID, walkerID, dogIDs)
}

func (s *sessionService) CompleteSession(ctx context.Context, actor domain.Identity, sessionID int32) (int64, error) {
	if !actor.CanManageWalks() {
		return 0, domain.ErrForbidden
	}
	reports, err := s.reportRepo.FinalizeSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	logger.Info("Walk session finalized", "session_id", sessionID, "report_rows", reports, "actor_id", actor.UserID)
	return reports, nil
}
