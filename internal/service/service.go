package service

import (
	"context"

	"dogwalk-backend/internal/domain"
)

type SessionService interface {
	OpenSession(ctx context.Context, actor domain.Identity, walkDate, walkTime string, dogID *int32) (*domain.WalkSession, error)
	ListSessions(ctx context.Context, actor domain.Identity) ([]domain.WalkSession, error)
	CancelSession(ctx context.Context, actor domain.Identity, sessionID int32) error
	BookWalker(ctx context.Context, actor domain.Identity, sessionID int32, dogName, startTime, endTime string) (*domain.Booking, error)
	SetCheckIn(ctx context.Context, actor domain.Identity, sessionID, walkerID int32, checkedIn bool) error
	AssignDogs(ctx context.Context, actor domain.Identity, sessionID, walkerID int32, dogIDs []int32) error
	CompleteSession(ctx context.Context, actor domain.Identity, sessionID int32) (int64, error)
}

type ReportService interface {
	ListReports(ctx context.Context, actor domain.Identity) ([]domain.WalkReport, error)
	DeleteReport(ctx context.Context, actor domain.Identity, reportID int32) error
	DeleteAllReports(ctx context.Context, actor domain.Identity) (int64, error)
}

type RoleRequestService interface {
	Submit(ctx context.Context, actor domain.Identity, reason string) (*domain.RoleRequest, error)
	GetMine(ctx context.Context, actor domain.Identity) (*domain.RoleRequest, error)
	ListPending(ctx context.Context, actor domain.Identity) ([]domain.RoleRequest, error)
	Decide(ctx context.Context, actor domain.Identity, userID int32, action domain.RequestAction) (*domain.RoleRequest, error)
	Demote(ctx context.Context, actor domain.Identity, userID int32) error
}

type AdoptionService interface {
	Submit(ctx context.Context, actor domain.Identity, dogID int32) (*domain.AdoptionRequest, error)
	ListMine(ctx context.Context, actor domain.Identity) ([]domain.AdoptionRequest, error)
	ListPending(ctx context.Context, actor domain.Identity) ([]domain.AdoptionRequest, error)
	Decide(ctx context.Context, actor domain.Identity, requestID int32, action domain.RequestAction) (*domain.AdoptionRequest, error)
}

type DogService interface {
	CreateDog(ctx context.Context, actor domain.Identity, dog *domain.Dog) error
	GetDog(ctx context.Context, dogID int32) (*domain.Dog, error)
	ListDogs(ctx context.Context) ([]domain.Dog, error)
}

type EmailService interface {
	SendRequestDecisionNotification(ctx context.Context, email, name, subject, body string) error
	SendSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error
	SendStaleSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error
}
