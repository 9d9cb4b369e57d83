package report

import "context"

// ReportRepository defines the read-only queries backing daily summaries.
type ReportRepository interface {
	// GetDirectReports retrieves the manager's roster in stable query order
	GetDirectReports(ctx context.Context, managerID string) ([]TeamMember, error)

	// ListTeamEventsOnDate retrieves the team's check-in events whose
	// check-in timestamp falls on the given calendar date (YYYY-MM-DD),
	// joined with client names, ordered by check-in time ascending
	ListTeamEventsOnDate(ctx context.Context, managerID string, date string) ([]TeamEvent, error)
}
