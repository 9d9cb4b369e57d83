package report

import "context"

// ReportService generates attendance reports for managers.
type ReportService interface {
	// DailySummary aggregates the manager's team events for a date into one
	// record per roster member. Employees with no events still appear,
	// marked Absent. date is YYYY-MM-DD; empty means the current server date.
	DailySummary(ctx context.Context, managerID string, date string) (DailySummaryReport, error)
}
