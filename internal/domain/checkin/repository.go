package checkin

import (
	"context"
	"time"
)

// CheckinRepository defines data access for check-in events.
type CheckinRepository interface {
	// Create persists a new check-in event
	Create(ctx context.Context, ev CheckinEvent) (CheckinEvent, error)

	// GetActiveSession retrieves the employee's open session joined with the
	// client name, or nil when the employee is idle
	GetActiveSession(ctx context.Context, employeeID string) (*CheckinEvent, error)

	// SetCheckoutTime closes the event. Returns ErrNoActiveSession when the
	// event is already closed or does not exist.
	SetCheckoutTime(ctx context.Context, eventID string, t time.Time) (CheckinEvent, error)

	// LockEmployee serializes check-in/checkout for one employee. Only valid
	// inside a transaction; the lock is released on commit or rollback.
	LockEmployee(ctx context.Context, employeeID string) error
}
