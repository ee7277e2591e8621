package service

import (
	"errors"
	"testing"
	"time"

	"dogwalk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGate(cooldown time.Duration, now time.Time) cooldownGate {
	g := newCooldownGate(cooldown)
	g.now = func() time.Time { return now }
	return g
}

func TestCooldownGate_PendingBlocksResubmit(t *testing.T) {
	gate := fixedGate(7*24*time.Hour, time.Now())

	err := gate.checkResubmit(domain.RequestState{Status: domain.RequestStatusPending})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCooldownGate_ApprovedIsTerminal(t *testing.T) {
	gate := fixedGate(7*24*time.Hour, time.Now())

	err := gate.checkResubmit(domain.RequestState{Status: domain.RequestStatusApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCooldownGate_DeniedWithinCooldown(t *testing.T) {
	denied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// Just short of the full seven days.
	now := denied.Add(6*24*time.Hour + 23*time.Hour)
	gate := fixedGate(7*24*time.Hour, now)

	err := gate.checkResubmit(domain.RequestState{
		Status:      domain.RequestStatusDenied,
		ProcessedOn: &denied,
	})
	require.Error(t, err)

	var cdErr *domain.CooldownError
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, denied.Add(7*24*time.Hour), cdErr.RetryAt)
}

func TestCooldownGate_DeniedAfterCooldown(t *testing.T) {
	denied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := denied.Add(7*24*time.Hour + time.Second)
	gate := fixedGate(7*24*time.Hour, now)

	err := gate.checkResubmit(domain.RequestState{
		Status:      domain.RequestStatusDenied,
		ProcessedOn: &denied,
	})
	assert.NoError(t, err)
}

func TestCooldownGate_DeniedExactlyAtBoundary(t *testing.T) {
	denied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := fixedGate(7*24*time.Hour, denied.Add(7*24*time.Hour))

	// RetryAt is the first admissible instant, so the boundary passes.
	err := gate.checkResubmit(domain.RequestState{
		Status:      domain.RequestStatusDenied,
		ProcessedOn: &denied,
	})
	assert.NoError(t, err)
}

func TestCooldownGate_NoPreviousRequest(t *testing.T) {
	gate := fixedGate(7*24*time.Hour, time.Now())

	err := gate.checkResubmit(domain.RequestState{})
	assert.NoError(t, err)
}

func TestCooldownGate_DeniedCutoff(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	gate := fixedGate(7*24*time.Hour, now)

	assert.Equal(t, now.Add(-7*24*time.Hour), gate.deniedCutoff())
}
