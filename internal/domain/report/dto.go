package report

import "time"

// Attendance status values in the daily summary.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"

	// ActiveMarker is shown as last_checkout while a session is still open.
	ActiveMarker = "Active"
)

// TeamMember is one roster entry: an employee reporting to the manager.
type TeamMember struct {
	ID    string
	Name  string
	Email string
}

// TeamEvent is a check-in event joined with its client name, as fetched for
// one report date. Times are instants; display formatting happens in the
// assembler.
type TeamEvent struct {
	EmployeeID   string
	ClientName   string
	CheckinTime  time.Time
	CheckoutTime *time.Time
}

// DailySummaryRecord is one employee's aggregated day.
type DailySummaryRecord struct {
	EmployeeName   string   `json:"employee_name"`
	Status         string   `json:"status"`
	FirstCheckin   *string  `json:"first_checkin,omitempty"`
	LastCheckout   *string  `json:"last_checkout,omitempty"`
	TotalCheckins  int      `json:"total_checkins"`
	TotalHours     float64  `json:"total_hours"`
	ClientsVisited []string `json:"clients_visited"`
}

// DailySummaryReport is the assembled report for one manager and date.
type DailySummaryReport struct {
	Date    string
	Records []DailySummaryRecord
}
