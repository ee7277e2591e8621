package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrDuplicateSlot = errors.New("a session for this date, time and dog already exists")
	ErrSessionFull   = errors.New("session has reached its walker capacity")
	ErrInvalidState  = errors.New("operation not valid in the current state")
)

// CooldownError rejects a request resubmitted before the denial
// cooldown has elapsed. RetryAt is the first instant a new submission
// will be accepted.
type CooldownError struct {
	RetryAt time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("request denied recently, retry after %s", e.RetryAt.Format(time.RFC3339))
}

// ValidationError reports malformed caller input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
