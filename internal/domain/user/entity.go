package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// User is a member of the field workforce. Employees carry a reference to
// their manager; managers have no manager of their own.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	ManagerID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
