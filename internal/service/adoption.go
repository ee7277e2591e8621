package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository"
)

type adoptionService struct {
	adoptionRepo repository.AdoptionRequestRepository
	dogRepo      repository.DogRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	gate         cooldownGate
}

func NewAdoptionService(
	adoptionRepo repository.AdoptionRequestRepository,
	dogRepo repository.DogRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	cooldown time.Duration,
) AdoptionService {
	return &adoptionService{
		adoptionRepo: adoptionRepo,
		dogRepo:      dogRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		gate:         newCooldownGate(cooldown),
	}
}

func (s *adoptionService) Submit(ctx context.Context, actor domain.Identity, dogID int32) (*domain.AdoptionRequest, error) {
	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, fmt.Errorf("look up dog: %w", err)
	}
	if dog.Status != domain.DogStatusAvailable {
		return nil, domain.ErrInvalidState
	}

	prev, err := s.adoptionRepo.GetLatestByUserAndDog(ctx, actor.UserID, dogID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load previous adoption request: %w", err)
	}
	if prev != nil {
		if err := s.gate.checkResubmit(prev.State()); err != nil {
			return nil, err
		}
	}

	req := &domain.AdoptionRequest{UserID: actor.UserID, DogID: dogID}
	if err := s.adoptionRepo.Submit(ctx, req, s.gate.deniedCutoff()); err != nil {
		return nil, err
	}
	logger.Info("Adoption requested", "user_id", actor.UserID, "dog_id", dogID, "request_id", req.ID)
	return req, nil
}

func (s *adoptionService) ListMine(ctx context.Context, actor domain.Identity) ([]domain.AdoptionRequest, error) {
	return s.adoptionRepo.ListByUser(ctx, actor.UserID)
}

func (s *adoptionService) ListPending(ctx context.Context, actor domain.Identity) ([]domain.AdoptionRequest, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.adoptionRepo.ListPending(ctx)
}

func (s *adoptionService) Decide(ctx context.Context, actor domain.Identity, requestID int32, action domain.RequestAction) (*domain.AdoptionRequest, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	approve, err := parseAction(action)
	if err != nil {
		return nil, err
	}

	if _, err := s.adoptionRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	if err := s.adoptionRepo.Decide(ctx, requestID, approve, time.Now()); err != nil {
		return nil, err
	}
	logger.Info("Adoption request decided", "request_id", requestID, "action", action, "admin_id", actor.UserID)

	req, err := s.adoptionRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if user, uerr := s.userRepo.GetByID(ctx, req.UserID); uerr == nil {
		dogName := fmt.Sprintf("dog %d", req.DogID)
		if dog, derr := s.dogRepo.GetByID(ctx, req.DogID); derr == nil {
			dogName = dog.Name
		}
		subject := "Adoption request update"
		body := fmt.Sprintf("Your request to adopt %s was denied. You may apply again after the cooldown period.", dogName)
		if approve {
			body = fmt.Sprintf("Congratulations, your request to adopt %s was approved.", dogName)
		}
		if err := s.emailSvc.SendRequestDecisionNotification(ctx, user.Email, user.Name, subject, body); err != nil {
			logger.Warn("Failed to send adoption decision email", "request_id", requestID, "error", err)
		}
	}

	return req, nil
}
