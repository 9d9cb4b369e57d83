package checkin

import "context"

// CheckinService defines business logic for check-in operations. Caller
// identity is always an explicit argument, never pulled from ambient state.
type CheckinService interface {
	// CheckIn validates and records a check-in at a client site. A check-in
	// beyond the configured radius still succeeds; the response carries a
	// warning message instead.
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (CheckinResponse, error)

	// CheckOut closes the employee's active session
	CheckOut(ctx context.Context, employeeID string) (CheckinResponse, error)

	// GetActiveSession retrieves the employee's open session, or nil when idle
	GetActiveSession(ctx context.Context, employeeID string) (*CheckinResponse, error)

	// ListAssignedClients retrieves the sites the employee may check in at
	ListAssignedClients(ctx context.Context, employeeID string) ([]ClientResponse, error)
}
