package user

import "context"

// UserRepository defines data access for workforce members.
// The roster store is read-only from the core's point of view.
type UserRepository interface {
	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetDirectReports retrieves the employees reporting to a manager,
	// in stable query order
	GetDirectReports(ctx context.Context, managerID string) ([]User, error)
}
