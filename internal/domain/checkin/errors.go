package checkin

import "errors"

// Check-in domain errors
var (
	ErrAlreadyCheckedIn = errors.New("you are already checked in")
	ErrNoActiveSession  = errors.New("no active check-in found")
	ErrNotAssigned      = errors.New("you are not assigned to this client")
)
