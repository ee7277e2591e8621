package jobs

import (
	"dogwalk-backend/internal/config"
	"dogwalk-backend/internal/logger"
	"dogwalk-backend/internal/repository/postgres"
	"dogwalk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		email:  email,
		config: cfg,
	}
}

// Config exposes the configuration for the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.RemindStaleSessions()
	jr.RemindWalkDaySessions()
}
