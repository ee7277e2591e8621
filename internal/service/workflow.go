package service

import (
	"time"

	"dogwalk-backend/internal/domain"
)

// cooldownGate is the shared admission rule for both request
// workflows (role upgrade, adoption). A key may hold at most one
// pending request; a denial blocks resubmission until the cooldown
// has elapsed; approval is terminal.
type cooldownGate struct {
	cooldown time.Duration
	now      func() time.Time
}

func newCooldownGate(cooldown time.Duration) cooldownGate {
	return cooldownGate{cooldown: cooldown, now: time.Now}
}

// checkResubmit decides whether a new submission is admissible given
// the previous request state for the same key.
func (g cooldownGate) checkResubmit(prev domain.RequestState) error {
	switch prev.Status {
	case domain.RequestStatusPending, domain.RequestStatusApproved:
		return domain.ErrInvalidState
	case domain.RequestStatusDenied:
		if prev.ProcessedOn == nil {
			return nil
		}
		retryAt := prev.ProcessedOn.Add(g.cooldown)
		if g.now().Before(retryAt) {
			return &domain.CooldownError{RetryAt: retryAt}
		}
	}
	return nil
}

// deniedCutoff is the newest denial timestamp that no longer blocks a
// submission. Repositories re-check it inside their own statement so
// the gate holds under races.
func (g cooldownGate) deniedCutoff() time.Time {
	return g.now().Add(-g.cooldown)
}
