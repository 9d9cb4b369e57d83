package client

import "context"

// ClientRepository defines read access to client sites and the
// employee-client assignment relation. Assignments are queried, never
// mutated, by this service.
type ClientRepository interface {
	// GetByID retrieves a client site by id
	GetByID(ctx context.Context, id string) (Client, error)

	// IsAssigned reports whether the employee may check in at the client.
	// A missing assignment row is false, not an error.
	IsAssigned(ctx context.Context, employeeID string, clientID string) (bool, error)

	// ListAssignedTo retrieves the client sites assigned to an employee
	ListAssignedTo(ctx context.Context, employeeID string) ([]Client, error)
}
