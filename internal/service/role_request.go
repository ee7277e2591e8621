package service

import (
	"context"
	"fmt"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository"
)

type roleRequestService struct {
	roleRepo repository.RoleRequestRepository
	userRepo repository.UserRepository
	emailSvc EmailService
	gate     cooldownGate
}

func NewRoleRequestService(
	roleRepo repository.RoleRequestRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	cooldown time.Duration,
) RoleRequestService {
	return &roleRequestService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
		gate:     newCooldownGate(cooldown),
	}
}

func (s *roleRequestService) Submit(ctx context.Context, actor domain.Identity, reason string) (*domain.RoleRequest, error) {
	if reason == "" {
		return nil, domain.NewValidationError("reason", "must not be empty")
	}
	if actor.IsMarshal() || actor.IsAdmin() {
		return nil, domain.ErrInvalidState
	}

	prev, err := s.roleRepo.GetByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("load previous role request: %w", err)
	}
	if err := s.gate.checkResubmit(prev.State()); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Submit(ctx, actor.UserID, reason, s.gate.deniedCutoff()); err != nil {
		return nil, err
	}
	logger.Info("Role upgrade requested", "user_id", actor.UserID)
	return s.roleRepo.GetByUser(ctx, actor.UserID)
}

func (s *roleRequestService) GetMine(ctx context.Context, actor domain.Identity) (*domain.RoleRequest, error) {
	return s.roleRepo.GetByUser(ctx, actor.UserID)
}

func (s *roleRequestService) ListPending(ctx context.Context, actor domain.Identity) ([]domain.RoleRequest, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.roleRepo.ListPending(ctx)
}

func (s *roleRequestService) Decide(ctx context.Context, actor domain.Identity, userID int32, action domain.RequestAction) (*domain.RoleRequest, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	approve, err := parseAction(action)
	if err != nil {
		return nil, err
	}

	if err := s.roleRepo.Decide(ctx, userID, approve, time.Now()); err != nil {
		return nil, err
	}
	logger.Info("Role request decided", "user_id", userID, "action", action, "admin_id", actor.UserID)

	req, err := s.roleRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		subject := "Marshal role request update"
		body := "Your request to become a marshal was denied. You may apply again after the cooldown period."
		if approve {
			body = "Congratulations, your request to become a marshal was approved."
		}
		if err := s.emailSvc.SendRequestDecisionNotification(ctx, user.Email, user.Name, subject, body); err != nil {
			logger.Warn("Failed to send role decision email", "user_id", userID, "error", err)
		}
	}

	return req, nil
}

func (s *roleRequestService) Demote(ctx context.Context, actor domain.Identity, userID int32) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.roleRepo.Clear(ctx, userID); err != nil {
		return err
	}
	logger.Info("User demoted to walker", "user_id", userID, "admin_id", actor.UserID)
	return nil
}

func parseAction(action domain.RequestAction) (bool, error) {
	switch action {
	case domain.RequestActionApprove:
		return true, nil
	case domain.RequestActionDeny:
		return false, nil
	default:
		return false, domain.NewValidationError("action", "must be approve or deny")
	}
}
