package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dogwalk-backend/internal/config"
	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.WalkSession) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSessionRepo) GetByID(ctx context.Context, id int32) (*domain.WalkSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockSessionRepo) ListFromDate(ctx context.Context, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) ListByMarshalFromDate(ctx context.Context, marshalID int32, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, marshalID, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) ListByWalkerFromDate(ctx context.Context, walkerID int32, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, walkerID, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) ListEndedBefore(ctx context.Context, date string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) ListOnDate(ctx context.Context, date string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *mockSessionRepo) CreateBooking(ctx context.Context, b *domain.Booking, capacity int) error {
	return m.Called(ctx, b, capacity).Error(0)
}
func (m *mockSessionRepo) SetCheckIn(ctx context.Context, sessionID, walkerID int32, checkedIn bool) error {
	return m.Called(ctx, sessionID, walkerID, checkedIn).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendRequestDecisionNotification(ctx context.Context, email, name, subject, body string) error {
	return m.Called(ctx, email, name, subject, body).Error(0)
}
func (m *mockEmailService) SendSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	return m.Called(ctx, email, name, walkDate, walkTime).Error(0)
}
func (m *mockEmailService) SendStaleSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	return m.Called(ctx, email, name, walkDate, walkTime).Error(0)
}

func newTestRunner(sessions *mockSessionRepo, users *mockUserRepo, email *mockEmailService) *JobRunner {
	store := &postgres.Store{
		SessionRepository: sessions,
		UserRepository:    users,
	}
	return NewJobRunner(store, email, &config.Config{})
}

func TestRemindStaleSessions(t *testing.T) {
	sessions := new(mockSessionRepo)
	users := new(mockUserRepo)
	email := new(mockEmailService)
	runner := newTestRunner(sessions, users, email)

	today := time.Now().UTC().Format("2006-01-02")
	sessions.On("ListEndedBefore", mock.Anything, today).Return([]domain.WalkSession{
		{ID: 1, MarshalID: 2, WalkDate: "2026-04-01", WalkTime: "10:00"},
		{ID: 2, MarshalID: 3, WalkDate: "2026-04-02", WalkTime: "09:00"},
	}, nil)
	users.On("GetByID", mock.Anything, int32(2)).Return(&domain.User{ID: 2, Name: "Marsha", Email: "marsha@example.com"}, nil)
	users.On("GetByID", mock.Anything, int32(3)).Return(&domain.User{ID: 3, Name: "Mel", Email: "mel@example.com"}, nil)
	email.On("SendStaleSessionReminder", mock.Anything, "marsha@example.com", "Marsha", "2026-04-01", "10:00").Return(nil)
	email.On("SendStaleSessionReminder", mock.Anything, "mel@example.com", "Mel", "2026-04-02", "09:00").Return(nil)

	runner.RemindStaleSessions()

	email.AssertExpectations(t)
}

func TestRemindStaleSessions_SkipsMissingMarshal(t *testing.T) {
	sessions := new(mockSessionRepo)
	users := new(mockUserRepo)
	email := new(mockEmailService)
	runner := newTestRunner(sessions, users, email)

	today := time.Now().UTC().Format("2006-01-02")
	sessions.On("ListEndedBefore", mock.Anything, today).Return([]domain.WalkSession{
		{ID: 1, MarshalID: 2, WalkDate: "2026-04-01", WalkTime: "10:00"},
	}, nil)
	users.On("GetByID", mock.Anything, int32(2)).Return(nil, domain.ErrNotFound)

	runner.RemindStaleSessions()

	email.AssertNotCalled(t, "SendStaleSessionReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindWalkDaySessions(t *testing.T) {
	sessions := new(mockSessionRepo)
	users := new(mockUserRepo)
	email := new(mockEmailService)
	runner := newTestRunner(sessions, users, email)

	today := time.Now().UTC().Format("2006-01-02")
	sessions.On("ListOnDate", mock.Anything, today).Return([]domain.WalkSession{
		{ID: 1, MarshalID: 2, WalkDate: today, WalkTime: "10:00"},
	}, nil)
	users.On("GetByID", mock.Anything, int32(2)).Return(&domain.User{ID: 2, Name: "Marsha", Email: "marsha@example.com"}, nil)
	email.On("SendSessionReminder", mock.Anything, "marsha@example.com", "Marsha", today, "10:00").Return(nil)

	runner.RemindWalkDaySessions()

	email.AssertExpectations(t)
}

func TestRemindWalkDaySessions_EmailFailureContinues(t *testing.T) {
	sessions := new(mockSessionRepo)
	users := new(mockUserRepo)
	email := new(mockEmailService)
	runner := newTestRunner(sessions, users, email)

	today := time.Now().UTC().Format("2006-01-02")
	sessions.On("ListOnDate", mock.Anything, today).Return([]domain.WalkSession{
		{ID: 1, MarshalID: 2, WalkDate: today, WalkTime: "10:00"},
		{ID: 2, MarshalID: 3, WalkDate: today, WalkTime: "11:00"},
	}, nil)
	users.On("GetByID", mock.Anything, int32(2)).Return(&domain.User{ID: 2, Name: "Marsha", Email: "marsha@example.com"}, nil)
	users.On("GetByID", mock.Anything, int32(3)).Return(&domain.User{ID: 3, Name: "Mel", Email: "mel@example.com"}, nil)
	email.On("SendSessionReminder", mock.Anything, "marsha@example.com", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid down"))
	email.On("SendSessionReminder", mock.Anything, "mel@example.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	runner.RemindWalkDaySessions()

	email.AssertExpectations(t)
}

func TestRunWithRecovery_SwallowsPanic(t *testing.T) {
	runner := newTestRunner(new(mockSessionRepo), new(mockUserRepo), new(mockEmailService))

	assert.NotPanics(t, func() {
		runner.runWithRecovery("panicky-job", func() { panic("boom") })
	})
}
