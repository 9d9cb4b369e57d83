package response

import (
	"errors"
	"net/http"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/auth"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/checkin"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/client"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/user"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unknown errors become a
// generic 500; the cause is logged server-side, never sent to the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")

	// Check-in domain errors
	case errors.Is(err, checkin.ErrNotAssigned):
		Forbidden(w, "You are not assigned to this client")
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		Conflict(w, "You are already checked in")
	case errors.Is(err, checkin.ErrNoActiveSession):
		NotFound(w, "No active check-in found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
