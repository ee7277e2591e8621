package service

import (
	"context"
	"time"

	"dogwalk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, s *domain.WalkSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSessionRepo) GetByID(ctx context.Context, id int32) (*domain.WalkSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSessionRepo) ListFromDate(ctx context.Context, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) ListByMarshalFromDate(ctx context.Context, marshalID int32, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, marshalID, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) ListByWalkerFromDate(ctx context.Context, walkerID int32, fromDate string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, walkerID, fromDate)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) ListEndedBefore(ctx context.Context, date string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) ListOnDate(ctx context.Context, date string) ([]domain.WalkSession, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.WalkSession), args.Error(1)
}
func (m *MockSessionRepo) CreateBooking(ctx context.Context, b *domain.Booking, capacity int) error {
	args := m.Called(ctx, b, capacity)
	return args.Error(0)
}
func (m *MockSessionRepo) SetCheckIn(ctx context.Context, sessionID, walkerID int32, checkedIn bool) error {
	args := m.Called(ctx, sessionID, walkerID, checkedIn)
	return args.Error(0)
}

// MockAssignmentRepo
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) AssignDogs(ctx context.Context, sessionID, walkerID int32, dogIDs []int32) error {
	args := m.Called(ctx, sessionID, walkerID, dogIDs)
	return args.Error(0)
}
func (m *MockAssignmentRepo) ListBySession(ctx context.Context, sessionID int32) ([]domain.Assignment, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) FinalizeSession(ctx context.Context, sessionID int32) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReportRepo) List(ctx context.Context) ([]domain.WalkReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WalkReport), args.Error(1)
}
func (m *MockReportRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReportRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockDogRepo
type MockDogRepo struct {
	mock.Mock
}

func (m *MockDogRepo) Create(ctx context.Context, dog *domain.Dog) error {
	args := m.Called(ctx, dog)
	return args.Error(0)
}
func (m *MockDogRepo) GetByID(ctx context.Context, id int32) (*domain.Dog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dog), args.Error(1)
}
func (m *MockDogRepo) List(ctx context.Context) ([]domain.Dog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Dog), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRoleRequestRepo
type MockRoleRequestRepo struct {
	mock.Mock
}

func (m *MockRoleRequestRepo) GetByUser(ctx context.Context, userID int32) (*domain.RoleRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoleRequest), args.Error(1)
}
func (m *MockRoleRequestRepo) ListPending(ctx context.Context) ([]domain.RoleRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RoleRequest), args.Error(1)
}
func (m *MockRoleRequestRepo) Submit(ctx context.Context, userID int32, reason string, deniedCutoff time.Time) error {
	args := m.Called(ctx, userID, reason, deniedCutoff)
	return args.Error(0)
}
func (m *MockRoleRequestRepo) Decide(ctx context.Context, userID int32, approve bool, processedOn time.Time) error {
	args := m.Called(ctx, userID, approve, processedOn)
	return args.Error(0)
}
func (m *MockRoleRequestRepo) Clear(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAdoptionRepo
type MockAdoptionRepo struct {
	mock.Mock
}

func (m *MockAdoptionRepo) GetByID(ctx context.Context, id int32) (*domain.AdoptionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdoptionRequest), args.Error(1)
}
func (m *MockAdoptionRepo) GetLatestByUserAndDog(ctx context.Context, userID, dogID int32) (*domain.AdoptionRequest, error) {
	args := m.Called(ctx, userID, dogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdoptionRequest), args.Error(1)
}
func (m *MockAdoptionRepo) ListByUser(ctx context.Context, userID int32) ([]domain.AdoptionRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AdoptionRequest), args.Error(1)
}
func (m *MockAdoptionRepo) ListPending(ctx context.Context) ([]domain.AdoptionRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdoptionRequest), args.Error(1)
}
func (m *MockAdoptionRepo) Submit(ctx context.Context, req *domain.AdoptionRequest, deniedCutoff time.Time) error {
	args := m.Called(ctx, req, deniedCutoff)
	return args.Error(0)
}
func (m *MockAdoptionRepo) Decide(ctx context.Context, id int32, approve bool, processedOn time.Time) error {
	args := m.Called(ctx, id, approve, processedOn)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestDecisionNotification(ctx context.Context, email, name, subject, body string) error {
	args := m.Called(ctx, email, name, subject, body)
	return args.Error(0)
}
func (m *MockEmailService) SendSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	args := m.Called(ctx, email, name, walkDate, walkTime)
	return args.Error(0)
}
func (m *MockEmailService) SendStaleSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	args := m.Called(ctx, email, name, walkDate, walkTime)
	return args.Error(0)
}
