package postgresql

import (
	"context"
	"fmt"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/report"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetDirectReports implements report.ReportRepository.
func (r *reportRepository) GetDirectReports(ctx context.Context, managerID string) ([]report.TeamMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email
		FROM users
		WHERE manager_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	var roster []report.TeamMember
	for rows.Next() {
		var m report.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, fmt.Errorf("failed to scan roster member: %w", err)
		}
		roster = append(roster, m)
	}

	return roster, rows.Err()
}

// ListTeamEventsOnDate implements report.ReportRepository. The calendar-day
// match is on the check-in timestamp only; an event checked out past midnight
// still belongs to the day it was opened.
func (r *reportRepository) ListTeamEventsOnDate(ctx context.Context, managerID string, date string) ([]report.TeamEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ch.employee_id, c.name AS client_name, ch.checkin_time, ch.checkout_time
		FROM checkins ch
		INNER JOIN users u ON u.id = ch.employee_id
		INNER JOIN clients c ON c.id = ch.client_id
		WHERE u.manager_id = $1
		  AND ch.checkin_time::date = $2::date
		ORDER BY ch.checkin_time ASC
	`

	rows, err := q.Query(ctx, query, managerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query team events: %w", err)
	}
	defer rows.Close()

	var events []report.TeamEvent
	for rows.Next() {
		var ev report.TeamEvent
		if err := rows.Scan(&ev.EmployeeID, &ev.ClientName, &ev.CheckinTime, &ev.CheckoutTime); err != nil {
			return nil, fmt.Errorf("failed to scan team event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
