package checkin

import (
	"time"

	"github.com/unolo/fieldtrack-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN DTOs
// ========================================

type CheckInRequest struct {
	ClientID  string   `json:"client_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "Client ID is required",
		})
	}

	// Location is optional, but a half-supplied one is malformed.
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckinResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"client_id"`
	ClientName     *string `json:"client_name,omitempty"`
	CheckinTime    string  `json:"checkin_time"`
	CheckoutTime   *string `json:"checkout_time,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	WarningMessage *string `json:"warning_message,omitempty"`
}

// MapEventToResponse converts a CheckinEvent to its wire shape. Timestamps
// are rendered RFC3339 UTC; formatting happens only at this boundary.
func MapEventToResponse(ev CheckinEvent) CheckinResponse {
	var checkout *string
	if ev.CheckoutTime != nil {
		s := ev.CheckoutTime.UTC().Format(time.RFC3339)
		checkout = &s
	}

	return CheckinResponse{
		ID:             ev.ID,
		ClientID:       ev.ClientID,
		ClientName:     ev.ClientName,
		CheckinTime:    ev.CheckinTime.UTC().Format(time.RFC3339),
		CheckoutTime:   checkout,
		Notes:          ev.Notes,
		WarningMessage: ev.WarningMessage,
	}
}

// ClientResponse is an assigned site as shown to the employee picking a
// check-in target. Coordinates are included so the UI can preview distance.
type ClientResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
