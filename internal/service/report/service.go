package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/report"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/validator"
)

const timeOfDayLayout = "15:04:05"

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepository report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{ReportRepository: reportRepository}
}

// DailySummary implements report.ReportService.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, managerID string, date string) (report.DailySummaryReport, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		return report.DailySummaryReport{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		}}
	}

	roster, err := s.GetDirectReports(ctx, managerID)
	if err != nil {
		return report.DailySummaryReport{}, fmt.Errorf("failed to get roster: %w", err)
	}

	events, err := s.ListTeamEventsOnDate(ctx, managerID, date)
	if err != nil {
		return report.DailySummaryReport{}, fmt.Errorf("failed to list team events: %w", err)
	}

	return report.DailySummaryReport{
		Date:    date,
		Records: summarize(roster, events),
	}, nil
}

// summarize produces one record per roster member, in roster order. The
// roster drives the join: employees without events still get a record,
// and events for anyone outside the roster are ignored.
func summarize(roster []report.TeamMember, events []report.TeamEvent) []report.DailySummaryRecord {
	byEmployee := make(map[string][]report.TeamEvent, len(roster))
	for _, ev := range events {
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}

	records := make([]report.DailySummaryRecord, 0, len(roster))
	for _, member := range roster {
		records = append(records, buildRecord(member, byEmployee[member.ID]))
	}
	return records
}

// buildRecord aggregates one employee's events, assumed sorted by check-in
// time ascending. Open sessions contribute no hours, and the checkout column
// shows the state of the chronologically last event only.
func buildRecord(member report.TeamMember, events []report.TeamEvent) report.DailySummaryRecord {
	record := report.DailySummaryRecord{
		EmployeeName:   member.Name,
		Status:         report.StatusAbsent,
		ClientsVisited: []string{},
	}
	if len(events) == 0 {
		return record
	}

	record.Status = report.StatusPresent
	record.TotalCheckins = len(events)

	first := formatTimeOfDay(events[0].CheckinTime)
	record.FirstCheckin = &first

	last := events[len(events)-1]
	lastCheckout := report.ActiveMarker
	if last.CheckoutTime != nil {
		lastCheckout = formatTimeOfDay(*last.CheckoutTime)
	}
	record.LastCheckout = &lastCheckout

	var total time.Duration
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.CheckoutTime != nil {
			total += ev.CheckoutTime.Sub(ev.CheckinTime)
		}
		if !seen[ev.ClientName] {
			seen[ev.ClientName] = true
			record.ClientsVisited = append(record.ClientsVisited, ev.ClientName)
		}
	}
	record.TotalHours = math.Round(total.Hours()*10) / 10

	return record
}

func formatTimeOfDay(t time.Time) string {
	return t.Local().Format(timeOfDayLayout)
}
