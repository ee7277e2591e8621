package service

import (
	"context"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) ListReports(ctx context.Context, actor domain.Identity) ([]domain.WalkReport, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.reportRepo.List(ctx)
}

func (s *reportService) DeleteReport(ctx context.Context, actor domain.Identity, reportID int32) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		return err
	}
	logger.Info("Walk report deleted", "report_id", reportID, "admin_id", actor.UserID)
	return nil
}

func (s *reportService) DeleteAllReports(ctx context.Context, actor domain.Identity) (int64, error) {
	if !actor.IsAdmin() {
		return 0, domain.ErrForbidden
	}
	deleted, err := s.reportRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("All walk reports deleted", "count", deleted, "admin_id", actor.UserID)
	return deleted, nil
}
