package jobs

import (
	"context"
	"time"

	"dogwalk-backend/internal/logger"
)

// RemindStaleSessions emails marshals whose sessions' walk dates have
// passed without the session being finalized or cancelled.
func (jr *JobRunner) RemindStaleSessions() {
	jr.runWithRecovery("remind-stale-sessions", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		sessions, err := jr.store.SessionRepository.ListEndedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list stale sessions", "error", err)
			return
		}

		for _, session := range sessions {
			marshal, err := jr.store.UserRepository.GetByID(ctx, session.MarshalID)
			if err != nil {
				logger.Warn("Failed to load marshal for stale session", "session_id", session.ID, "error", err)
				continue
			}
			if err := jr.email.SendStaleSessionReminder(ctx, marshal.Email, marshal.Name, session.WalkDate, session.WalkTime); err != nil {
				logger.Warn("Failed to send stale session reminder", "session_id", session.ID, "error", err)
			}
		}
		logger.Info("Stale session reminders sent", "count", len(sessions))
	})
}

// RemindWalkDaySessions emails marshals in the morning of their walk
// day so check-ins are not forgotten.
func (jr *JobRunner) RemindWalkDaySessions() {
	jr.runWithRecovery("remind-walk-day-sessions", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		sessions, err := jr.store.SessionRepository.ListOnDate(ctx, today)
		if err != nil {
			logger.Error("Failed to list walk-day sessions", "error", err)
			return
		}

		for _, session := range sessions {
			marshal, err := jr.store.UserRepository.GetByID(ctx, session.MarshalID)
			if err != nil {
				logger.Warn("Failed to load marshal for walk-day session", "session_id", session.ID, "error", err)
				continue
			}
			if err := jr.email.SendSessionReminder(ctx, marshal.Email, marshal.Name, session.WalkDate, session.WalkTime); err != nil {
				logger.Warn("Failed to send walk-day reminder", "session_id", session.ID, "error", err)
			}
		}
		logger.Info("Walk-day reminders sent", "count", len(sessions))
	})
}
