package checkin

import "time"

// CheckinEvent is one visit to a client site. An event with a nil checkout
// time is an active session; an employee holds at most one at any time.
// Events are created on check-in, mutated once on checkout, never deleted.
type CheckinEvent struct {
	ID             string
	EmployeeID     string
	ClientID       string
	CheckinTime    time.Time
	CheckoutTime   *time.Time
	Notes          *string
	WarningMessage *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from clients
	ClientName *string
}
